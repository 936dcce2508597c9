package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default shift bounds applied when an employee record has no explicit
// shift_start / shift_end.
const (
	DefaultShiftStart = "09:00"
	DefaultShiftEnd   = "17:00"
)

// SlotStride is the fixed width of a bookable slot.
const SlotStride = 30 * time.Minute

// Employee represents a staff member. Doctors additionally carry the shift
// bounds and weekday availability the slot grid is computed from.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialization string     `gorm:"type:varchar(100)" json:"specialization,omitempty"`
	LicenseNumber  string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"license_number"`
	OfficeNumber   string     `gorm:"type:varchar(10)" json:"office_number"`
	AvailableDays  StringList `gorm:"type:jsonb" json:"available_days"`
	ShiftStart     string     `gorm:"type:time" json:"shift_start,omitempty"`
	ShiftEnd       string     `gorm:"type:time" json:"shift_end,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// OnDuty reports whether the employee works on the given date's weekday.
// Day names are matched case-insensitively against available_days.
func (e *Employee) OnDuty(date time.Time) bool {
	day := strings.ToLower(date.Weekday().String())
	for _, d := range e.AvailableDays {
		if strings.ToLower(d) == day {
			return true
		}
	}
	return false
}

// ShiftSlots returns the doctor's half-hour slot grid as ascending "HH:MM"
// start times. The grid holds floor(shift length / stride) slots and the
// first slot equals the shift start, so a trailing partial half-hour is not
// bookable. Unset bounds fall back to 09:00-17:00. A shift end at or before
// the shift start yields an empty grid, which is a valid day off.
func (e *Employee) ShiftSlots() []string {
	start := e.ShiftStart
	if start == "" {
		start = DefaultShiftStart
	}
	end := e.ShiftEnd
	if end == "" {
		end = DefaultShiftEnd
	}

	startAt, err := ParseClock(start)
	if err != nil {
		return nil
	}
	endAt, err := ParseClock(end)
	if err != nil {
		return nil
	}

	count := int(endAt.Sub(startAt) / SlotStride)
	if count <= 0 {
		return nil
	}

	slots := make([]string, count)
	for i := 0; i < count; i++ {
		slots[i] = startAt.Add(time.Duration(i) * SlotStride).Format("15:04")
	}
	return slots
}

// ParseClock parses a time-of-day in "HH:MM" or "HH:MM:SS" form (the latter
// is what the postgres time type scans back as).
func ParseClock(value string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("15:04", value)
}

// NormalizeClock reduces a time-of-day string to canonical "HH:MM" form.
// Values that do not parse are returned unchanged.
func NormalizeClock(value string) string {
	t, err := ParseClock(value)
	if err != nil {
		return value
	}
	return t.Format("15:04")
}
