package storage

import (
	"errors"
	"strings"

	"github.com/Joeseb100/realprops/models"

	"gorm.io/gorm"
)

// Public review listings are capped at this many entries, newest first.
const reviewPageSize = 20

// ReviewRepository stores visitor reviews behind an approval gate.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Submit creates an unapproved review. The rating is clamped into [1,5] and
// name/comment are trimmed.
func (r *ReviewRepository) Submit(name string, rating int, comment string) (*models.Review, error) {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	review := models.Review{
		Name:     strings.TrimSpace(name),
		Rating:   rating,
		Comment:  strings.TrimSpace(comment),
		Approved: false,
	}
	if err := r.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListPublic returns approved reviews only.
func (r *ReviewRepository) ListPublic() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("approved = ?", true).
		Order("created_at DESC").
		Limit(reviewPageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListAll returns reviews regardless of approval, for the admin dashboard.
func (r *ReviewRepository) ListAll() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Approve(id uint) error {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return r.db.Model(&review).Update("approved", true).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
