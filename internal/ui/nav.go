package ui

// NavItem is one entry of the header navigation.
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// NavItems returns the fixed navigation chrome of the admin console.
func NavItems() []NavItem {
	return []NavItem{
		{Name: "Dashboard", Href: "/"},
		{Name: "Questions", Href: "/questions"},
		{Name: "Records", Href: "/records"},
		{Name: "Users", Href: "/users"},
	}
}
