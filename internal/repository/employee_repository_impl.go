package repository

import (
	"encoding/json"
	"errors"
	"time"

	"sante-backend/internal/domain/entity"
	domainRepo "sante-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct{}

func NewEmployeeRepository() domainRepo.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) Create(db *gorm.DB, employee *entity.Employee) error {
	return db.Create(employee).Error
}

func (r *employeeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Preload("User").Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Preload("User").Where("user_id = ?", userID).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindDoctorsOnDuty(db *gorm.DB, day string) ([]entity.Employee, error) {
	var doctors []entity.Employee
	err := db.
		Joins("JOIN users ON users.id = employees.user_id").
		Where("users.role = ?", entity.RoleDoctor).
		Where("employees.available_days @> ?", jsonDay(day)).
		Preload("User").
		Order("users.last_name ASC, users.first_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *employeeRepository) FindDoctorsFreeOn(db *gorm.DB, day string, date time.Time) ([]entity.Employee, error) {
	var doctors []entity.Employee
	err := db.
		Joins("JOIN users ON users.id = employees.user_id").
		Where("users.role = ?", entity.RoleDoctor).
		Where("employees.available_days @> ?", jsonDay(day)).
		Where("NOT EXISTS (SELECT 1 FROM appointments WHERE appointments.doctor_id = employees.id AND appointments.appointment_date = ?)", date.Format("2006-01-02")).
		Preload("User").
		Order("users.last_name ASC, users.first_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// jsonDay renders a single weekday name as a JSONB array literal for @>
// containment against available_days.
func jsonDay(day string) string {
	b, _ := json.Marshal([]string{day})
	return string(b)
}
