package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. Handlers never branch on raw
// strings; route access is declared through middleware.RequireRole.
type Role string

const (
	RoleDoctor       Role = "doctor"
	RolePatient      Role = "patient"
	RoleAdmin        Role = "admin"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDoctor, RolePatient, RoleAdmin, RoleNurse, RoleReceptionist:
		return true
	}
	return false
}

// IsStaff reports whether r is an employee role (everything but patient).
func (r Role) IsStaff() bool {
	return r.Valid() && r != RolePatient
}

// User represents the centralized authentication table
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"type:text;not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(50);not null" json:"last_name"`
	Role         Role       `gorm:"type:varchar(15);not null;index" json:"role"`
	Gender       string     `gorm:"type:varchar(10);default:'Other'" json:"gender"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	PhoneNumber  string     `gorm:"type:varchar(15)" json:"phone_number,omitempty"`
	Address      string     `gorm:"type:text" json:"address,omitempty"`
	ProfileImage string     `gorm:"type:varchar(200)" json:"profile_image,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient  *Patient  `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	Employee *Employee `gorm:"foreignKey:UserID" json:"employee_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
