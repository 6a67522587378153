package model

// Doctor is a public directory entry. It is not linked to a User account;
// the directory is maintained separately from signups.
type Doctor struct {
	Base
	Name         string `json:"name" db:"name"`
	Expertise    string `json:"expertise" db:"expertise"`
	Location     string `json:"location" db:"location"`
	Contact      string `json:"contact" db:"contact"`
	Availability string `json:"availability" db:"availability"`
	ProfilePic   string `json:"profilePic" db:"profile_pic"`
}

// CreateDoctorRequest represents directory entry parameters
type CreateDoctorRequest struct {
	Name         string `json:"name" binding:"required"`
	Expertise    string `json:"expertise" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Contact      string `json:"contact" binding:"required"`
	Availability string `json:"availability"`
	ProfilePic   string `json:"profilePic"`
}
