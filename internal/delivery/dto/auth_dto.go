package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email                 string   `json:"email" validate:"required,email"`
	Password              string   `json:"password" validate:"required,min=6"`
	FirstName             string   `json:"first_name" validate:"required,min=2"`
	LastName              string   `json:"last_name" validate:"required,min=2"`
	Gender                string   `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth           string   `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	PhoneNumber           string   `json:"phone_number" validate:"omitempty,min=7,max=15"`
	Address               string   `json:"address" validate:"omitempty"`
	MedicalRecordID       string   `json:"medical_record_id" validate:"required"`
	CPRNumber             string   `json:"cpr_number" validate:"required,len=8"`
	EmergencyContactName  string   `json:"emergency_contact_name" validate:"required"`
	EmergencyContactPhone string   `json:"emergency_contact_phone" validate:"required"`
	BloodType             string   `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	PlaceOfBirth          string   `json:"place_of_birth" validate:"omitempty"`
	Religion              string   `json:"religion" validate:"omitempty"`
	Allergies             []string `json:"allergies" validate:"omitempty"`
	PastSurgeries         []string `json:"past_surgeries" validate:"omitempty"`
	FamilyHistory         string   `json:"family_history" validate:"omitempty"`
	ChronicConditions     string   `json:"chronic_conditions" validate:"omitempty"`
}

type RegisterEmployeeRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=6"`
	FirstName      string   `json:"first_name" validate:"required,min=2"`
	LastName       string   `json:"last_name" validate:"required,min=2"`
	Role           string   `json:"role" validate:"required,oneof=doctor nurse receptionist admin"`
	Gender         string   `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	PhoneNumber    string   `json:"phone_number" validate:"omitempty,min=7,max=15"`
	Specialization string   `json:"specialization" validate:"omitempty"`
	LicenseNumber  string   `json:"license_number" validate:"required"`
	OfficeNumber   string   `json:"office_number" validate:"omitempty"`
	AvailableDays  []string `json:"available_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	ShiftStart     string   `json:"shift_start" validate:"omitempty"` // Format: HH:MM
	ShiftEnd       string   `json:"shift_end" validate:"omitempty"`   // Format: HH:MM
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	Gender       string    `json:"gender,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Address      string    `json:"address,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
