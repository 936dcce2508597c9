package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "No Show"
)

// Valid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment binds one patient to one doctor at an exact date and
// time-of-day. At most one appointment may occupy a (doctor, date, time)
// triple; the workflow checks this explicitly and the partial unique index
// on scheduled rows backs it up against concurrent creates.
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate  time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime  string            `gorm:"type:time;not null" json:"appointment_time"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null" json:"status"`
	HeartRate        *int              `json:"heart_rate,omitempty"`
	BloodPressure    string            `gorm:"type:varchar(20)" json:"blood_pressure,omitempty"`
	Temperature      *decimal.Decimal  `gorm:"type:decimal(4,1)" json:"temperature,omitempty"`
	O2Sat            *int              `gorm:"column:o2_sat" json:"o2_sat,omitempty"`
	RespRate         *int              `json:"resp_rate,omitempty"`
	Notes            string            `gorm:"type:text" json:"notes,omitempty"`
	FollowUpRequired bool              `gorm:"not null;default:false" json:"follow_up_required"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Employee `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// TimeOfDay returns the appointment time in canonical "HH:MM" form.
func (a *Appointment) TimeOfDay() string {
	return NormalizeClock(a.AppointmentTime)
}

// IsScheduled checks whether the appointment is still in its initial state
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}
