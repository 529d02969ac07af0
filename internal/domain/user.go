package domain

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserInactive  UserStatus = "INACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserDeleted   UserStatus = "DELETED"
)

type VerificationStatus string

const (
	Unverified    VerificationStatus = "UNVERIFIED"
	PhoneVerified VerificationStatus = "PHONE_VERIFIED"
	EmailVerified VerificationStatus = "EMAIL_VERIFIED"
	FullyVerified VerificationStatus = "FULLY_VERIFIED"
)

// User mirrors the backend user DTO. Timestamps stay as the ISO strings the
// backend sends; the client only formats them for display.
type User struct {
	ID                 int64              `json:"id"`
	Userid             string             `json:"userid"`
	Email              string             `json:"email,omitempty"`
	PhoneNumber        string             `json:"phoneNumber"`
	Name               string             `json:"name"`
	BirthDate          string             `json:"birthDate"`
	Gender             Gender             `json:"gender"`
	Status             UserStatus         `json:"status"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	PhoneVerifiedAt    string             `json:"phoneVerifiedAt,omitempty"`
	EmailVerifiedAt    string             `json:"emailVerifiedAt,omitempty"`
	LastLoginAt        string             `json:"lastLoginAt,omitempty"`
	CreatedAt          string             `json:"createdAt"`
	UpdatedAt          string             `json:"updatedAt"`
}

type CreateUserInput struct {
	Userid      string `json:"userid"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	BirthDate   string `json:"birthDate"`
	Gender      Gender `json:"gender"`
}

// UpdateUserInput never carries userid or phoneNumber: both are immutable
// after creation.
type UpdateUserInput struct {
	Email     string     `json:"email,omitempty"`
	Name      string     `json:"name,omitempty"`
	BirthDate string     `json:"birthDate,omitempty"`
	Gender    Gender     `json:"gender,omitempty"`
	Status    UserStatus `json:"status,omitempty"`
}
