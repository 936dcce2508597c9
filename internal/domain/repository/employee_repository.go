package repository

import (
	"time"

	"sante-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(db *gorm.DB, employee *entity.Employee) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Employee, error)
	// FindDoctorsOnDuty returns doctors whose available_days contains the
	// given lowercase weekday name.
	FindDoctorsOnDuty(db *gorm.DB, day string) ([]entity.Employee, error)
	// FindDoctorsFreeOn returns on-duty doctors with no appointment at all
	// on the given date (day-level rule, coarser than the slot view).
	FindDoctorsFreeOn(db *gorm.DB, day string, date time.Time) ([]entity.Employee, error)
}
