package domain

// Page is the Spring-style page envelope returned by the Users and Records
// list endpoints. The Questions list endpoint returns a bare array instead;
// that asymmetry belongs to the backend and is deliberately not papered over
// here.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// PageMeta is the pagination metadata a page container keeps after replacing
// its list wholesale.
type PageMeta struct {
	Number        int
	Size          int
	TotalPages    int
	TotalElements int64
	First         bool
	Last          bool
}

func (p Page[T]) Meta() PageMeta {
	return PageMeta{
		Number:        p.Number,
		Size:          p.Size,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		First:         p.First,
		Last:          p.Last,
	}
}
