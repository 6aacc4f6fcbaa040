package repository

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Upsert creates a user or refreshes email/name/role for an existing one.
// Retries from producers are safe: the write is keyed on the external id.
func (r *GormUserRepository) Upsert(user *models.User) error {
	user.UpdatedAt = time.Now()
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "name", "role", "updated_at"}),
		}).
		Create(user).Error
}

// FindByExternalID finds a user by the external user id
func (r *GormUserRepository) FindByExternalID(userID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users, most recent first
func (r *GormUserRepository) List(limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user and stamps updated_at. The stamp always wins over
// whatever the caller left in the struct.
func (r *GormUserRepository) Update(user *models.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// Delete removes a user and everything it owns in one transaction. Owned
// records (tasks, standups, onboarding) go with the user; conversations keep
// their row but lose the user link.
func (r *GormUserRepository) Delete(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Standup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Onboarding{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Conversation{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{"user_id": nil, "updated_at": time.Now()}).Error; err != nil {
			return err
		}

		res := tx.Where("user_id = ?", userID).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
