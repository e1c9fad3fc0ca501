package repositories

import (
	"errors"
	"fmt"

	"tableside/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStaffRepository is a GORM implementation of StaffRepository.
type GORMStaffRepository struct {
	db *gorm.DB
}

// NewGORMStaffRepository creates a new instance of GORMStaffRepository.
func NewGORMStaffRepository(db *gorm.DB) *GORMStaffRepository {
	return &GORMStaffRepository{
		db: db,
	}
}

// Create creates a new staff account in the database.
func (r *GORMStaffRepository) Create(staff *models.Staff) error {
	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	if err := r.db.Create(staff).Error; err != nil {
		return fmt.Errorf("failed to create staff account: %w", err)
	}
	return nil
}

// GetByUsername retrieves a staff account by username from the database.
func (r *GORMStaffRepository) GetByUsername(username string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff with username %s not found", username)
		}
		return nil, fmt.Errorf("failed to get staff by username %s: %w", username, err)
	}
	return &staff, nil
}

// GetByEmail retrieves a staff account by email from the database.
func (r *GORMStaffRepository) GetByEmail(email string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get staff by email %s: %w", email, err)
	}
	return &staff, nil
}

// GetByID retrieves a staff account by ID from the database.
func (r *GORMStaffRepository) GetByID(id string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get staff by ID %s: %w", id, err)
	}
	return &staff, nil
}
