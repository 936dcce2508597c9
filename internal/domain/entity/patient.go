package entity

import "github.com/google/uuid"

// Patient represents patient-specific clinical data. The scheduling flow
// only reads from this table; clinical updates happen elsewhere.
type Patient struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	MedicalRecordID       string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"medical_record_id"`
	CPRNumber             string     `gorm:"column:cpr_number;type:varchar(8);uniqueIndex;not null" json:"cpr_number"`
	EmergencyContactName  string     `gorm:"type:varchar(100)" json:"emergency_contact_name"`
	EmergencyContactPhone string     `gorm:"type:varchar(15)" json:"emergency_contact_phone"`
	BloodType             string     `gorm:"type:varchar(3)" json:"blood_type"`
	PlaceOfBirth          string     `gorm:"type:varchar(100)" json:"place_of_birth,omitempty"`
	Religion              string     `gorm:"type:varchar(50)" json:"religion,omitempty"`
	Allergies             StringList `gorm:"type:jsonb" json:"allergies,omitempty"`
	PastSurgeries         StringList `gorm:"type:jsonb" json:"past_surgeries,omitempty"`
	FamilyHistory         string     `gorm:"type:text" json:"family_history,omitempty"`
	ChronicConditions     string     `gorm:"type:text" json:"chronic_conditions,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Blood type constants
const (
	BloodTypeAPos  = "A+"
	BloodTypeANeg  = "A-"
	BloodTypeBPos  = "B+"
	BloodTypeBNeg  = "B-"
	BloodTypeABPos = "AB+"
	BloodTypeABNeg = "AB-"
	BloodTypeOPos  = "O+"
	BloodTypeONeg  = "O-"
)
