package forms

import (
	"regexp"
	"strings"

	"github.com/rstracker/fete-cms/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserForm is the controlled state of the user create/edit modal. In edit
// mode the immutable identity fields (userid, phoneNumber) are seeded for
// display but never validated or sent back.
type UserForm struct {
	Userid      string
	Email       string
	PhoneNumber string
	Name        string
	BirthDate   string
	Gender      domain.Gender
	Status      domain.UserStatus

	editing bool
}

// NewUserForm returns an empty create form with the modal's defaults.
func NewUserForm() *UserForm {
	return &UserForm{
		Gender: domain.GenderMale,
		Status: domain.UserActive,
	}
}

// EditUserForm seeds a form from an existing user.
func EditUserForm(u domain.User) *UserForm {
	return &UserForm{
		Userid:      u.Userid,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
		BirthDate:   dateOnly(u.BirthDate),
		Gender:      u.Gender,
		Status:      u.Status,
		editing:     true,
	}
}

func (f *UserForm) Editing() bool { return f.editing }

// Validate checks the identity fields and the email pattern. Uniqueness of
// userid/phone/email is a backend responsibility and is not duplicated here.
func (f *UserForm) Validate() []FieldError {
	var errs []FieldError
	if !f.editing && strings.TrimSpace(f.Userid) == "" {
		errs = append(errs, FieldError{Field: "userid", Message: "userid is required"})
	}
	if strings.TrimSpace(f.PhoneNumber) == "" {
		errs = append(errs, FieldError{Field: "phoneNumber", Message: "phone number is required"})
	}
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(f.BirthDate) == "" {
		errs = append(errs, FieldError{Field: "birthDate", Message: "birth date is required"})
	}
	if email := strings.TrimSpace(f.Email); email != "" && !emailPattern.MatchString(email) {
		errs = append(errs, FieldError{Field: "email", Message: "invalid email format"})
	}
	return errs
}

func (f *UserForm) CreateInput() domain.CreateUserInput {
	return domain.CreateUserInput{
		Userid:      strings.TrimSpace(f.Userid),
		Email:       strings.TrimSpace(f.Email),
		PhoneNumber: strings.TrimSpace(f.PhoneNumber),
		Name:        strings.TrimSpace(f.Name),
		BirthDate:   f.BirthDate,
		Gender:      f.Gender,
	}
}

func (f *UserForm) UpdateInput() domain.UpdateUserInput {
	return domain.UpdateUserInput{
		Email:     strings.TrimSpace(f.Email),
		Name:      strings.TrimSpace(f.Name),
		BirthDate: f.BirthDate,
		Gender:    f.Gender,
		Status:    f.Status,
	}
}

// dateOnly strips the time part off an ISO timestamp for the date input.
func dateOnly(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	return ts
}
