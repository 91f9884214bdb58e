package models

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// KnownUserRecord is a pre-provisioned user from the known-user directory
type KnownUserRecord struct {
	Email        string   `json:"email"`
	DisplayName  string   `json:"display_name"`
	Role         UserRole `json:"role"`
	Organization string   `json:"organization"`
	Image        string   `json:"image,omitempty"`
	PhotoURL     string   `json:"photo_url,omitempty"`
}
