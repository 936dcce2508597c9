package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string    `json:"appointment_time" validate:"required"` // Format: HH:MM

	// Status is accepted but ignored: new appointments always start Scheduled.
	Status string `json:"status,omitempty"`

	// Optional clinical fields, stored verbatim.
	Notes            string           `json:"notes,omitempty"`
	FollowUpRequired *bool            `json:"follow_up_required,omitempty"`
	HeartRate        *int             `json:"heart_rate,omitempty"`
	BloodPressure    string           `json:"blood_pressure,omitempty"`
	Temperature      *decimal.Decimal `json:"temperature,omitempty"`
	O2Sat            *int             `json:"o2_sat,omitempty"`
	RespRate         *int             `json:"resp_rate,omitempty"`
}

// UpdateAppointmentRequest carries a partial update; nil / empty fields are
// left unchanged. Patient and doctor references are not patchable.
type UpdateAppointmentRequest struct {
	AppointmentDate  string           `json:"appointment_date,omitempty" validate:"omitempty"`
	AppointmentTime  string           `json:"appointment_time,omitempty" validate:"omitempty"`
	Status           string           `json:"status,omitempty" validate:"omitempty"`
	Notes            *string          `json:"notes,omitempty"`
	FollowUpRequired *bool            `json:"follow_up_required,omitempty"`
	HeartRate        *int             `json:"heart_rate,omitempty"`
	BloodPressure    *string          `json:"blood_pressure,omitempty"`
	Temperature      *decimal.Decimal `json:"temperature,omitempty"`
	O2Sat            *int             `json:"o2_sat,omitempty"`
	RespRate         *int             `json:"resp_rate,omitempty"`
}

type AppointmentsByDateRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
}

type AvailableDoctorsRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID                   `json:"id"`
	Patient          *AppointmentPersonResponse  `json:"patient,omitempty"`
	Doctor           *AppointmentPersonResponse  `json:"doctor,omitempty"`
	AppointmentDate  string                      `json:"appointment_date"`
	AppointmentTime  string                      `json:"appointment_time"`
	Status           string                      `json:"status"`
	HeartRate        *int                        `json:"heart_rate,omitempty"`
	BloodPressure    string                      `json:"blood_pressure,omitempty"`
	Temperature      *decimal.Decimal            `json:"temperature,omitempty"`
	O2Sat            *int                        `json:"o2_sat,omitempty"`
	RespRate         *int                        `json:"resp_rate,omitempty"`
	Notes            string                      `json:"notes,omitempty"`
	FollowUpRequired bool                        `json:"follow_up_required"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

// AppointmentPersonResponse is the flattened patient/doctor projection
// attached to an appointment.
type AppointmentPersonResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	CPRNumber      string    `json:"cpr_number,omitempty"`
	BloodType      string    `json:"blood_type,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Allergies      []string  `json:"allergies,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	OfficeNumber   string    `json:"office_number,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
