package dto

import "github.com/google/uuid"

// Response DTOs for the daily slot view. Slots are computed per request and
// never persisted.

type ScheduleResponse struct {
	Date     string                   `json:"date"`
	Schedule []DoctorScheduleResponse `json:"schedule"`
}

type DoctorScheduleResponse struct {
	Doctor DoctorResponse `json:"doctor"`
	Slots  []SlotResponse `json:"slots"`
}

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	OfficeNumber   string    `json:"office_number"`
	AvailableDays  []string  `json:"available_days"`
	ShiftStart     string    `json:"shift_start"`
	ShiftEnd       string    `json:"shift_end"`
}

// SlotResponse is one half-hour slot. Status is either "Available" or the
// occupying appointment's own status string, so cancellations and no-shows
// stay visible in the grid.
type SlotResponse struct {
	Time        string                   `json:"time"`
	Status      string                   `json:"status"`
	Appointment *SlotAppointmentResponse `json:"appointment"`
}

type SlotAppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	PatientID        uuid.UUID `json:"patient_id"`
	PatientFirstName string    `json:"patient_first_name"`
	PatientLastName  string    `json:"patient_last_name"`
	PatientCPR       string    `json:"patient_cpr"`
	PatientEmail     string    `json:"patient_email"`
	Status           string    `json:"status"`
}

type AvailableDoctorsResponse struct {
	Date    string           `json:"date"`
	Doctors []DoctorResponse `json:"doctors"`
}
