package repository

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"gorm.io/gorm"
)

// GormOnboardingRepository is a GORM implementation of OnboardingRepository
type GormOnboardingRepository struct {
	db *gorm.DB
}

// NewOnboardingRepository creates a new OnboardingRepository
func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &GormOnboardingRepository{db: db}
}

// Create creates a new onboarding record
func (r *GormOnboardingRepository) Create(onboarding *models.Onboarding) error {
	return r.db.Create(onboarding).Error
}

// FindByID finds an onboarding record by its internal id
func (r *GormOnboardingRepository) FindByID(id uint64) (*models.Onboarding, error) {
	var onboarding models.Onboarding
	if err := r.db.First(&onboarding, id).Error; err != nil {
		return nil, err
	}
	return &onboarding, nil
}

// ListByUser retrieves a user's onboarding records, most recent first
func (r *GormOnboardingRepository) ListByUser(userID string) ([]models.Onboarding, error) {
	var records []models.Onboarding
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Update updates an onboarding record and stamps updated_at
func (r *GormOnboardingRepository) Update(onboarding *models.Onboarding) error {
	onboarding.UpdatedAt = time.Now()
	return r.db.Save(onboarding).Error
}
