package model

// User type constants
const (
	UserTypeFarmer = "farmer"
	UserTypeVet    = "vet"
)

// User represents a marketplace account, either a farmer or a veterinarian.
// LicenseNumber is set only for vets.
type User struct {
	Base
	FullName      string  `json:"fullName" db:"full_name"`
	Email         string  `json:"email" db:"email"`
	PasswordHash  string  `json:"-" db:"password_hash"`
	UserType      string  `json:"userType" db:"user_type"`
	LicenseNumber *string `json:"licenseNumber,omitempty" db:"license_number"`
	Location      string  `json:"location" db:"location"`
}

// SignupRequest represents account creation parameters
type SignupRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	UserType      string `json:"userType" binding:"required,oneof=farmer vet"`
	LicenseNumber string `json:"licenseNumber"`
	Location      string `json:"location" binding:"required"`
}

// LoginRequest represents login parameters
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the login success payload
type LoginResponse struct {
	Token    string `json:"token"`
	UserType string `json:"userType"`
	User     *User  `json:"user"`
}
