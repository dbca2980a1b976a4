package storage

import (
	"errors"

	"github.com/Joeseb100/realprops/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminRepository verifies credentials for the single back-office account.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Authenticate looks up the admin by email and compares the bcrypt hash.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (r *AdminRepository) Authenticate(email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

// Seed provisions the admin account if it does not exist yet. Admins are
// never created through a public-facing flow.
func (r *AdminRepository) Seed(email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin = models.Admin{Email: email, Password: string(hash)}
	if err := r.db.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
