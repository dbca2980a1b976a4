package storage

import (
	"errors"

	"github.com/Joeseb100/realprops/models"

	"gorm.io/gorm"
)

// PropertyRepository owns persistence of properties and their images.
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// PropertyFilter narrows List results. Empty fields mean no constraint;
// status defaulting to AVAILABLE for public views happens at the route layer.
type PropertyFilter struct {
	Location string
	Status   string
	Type     string
}

// List returns properties with their images, most recent first.
func (r *PropertyRepository) List(filter PropertyFilter) ([]models.Property, error) {
	q := r.db.Model(&models.Property{})
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var properties []models.Property
	if err := q.Preload("Images").Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Get returns a property with its images or ErrNotFound.
func (r *PropertyRepository) Get(id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.Preload("Images").First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Create validates required fields, then inserts the property row and its
// image rows inside one transaction. Bedrooms/bathrooms keep their zero
// default for plots; type and status fall back to HOUSE/AVAILABLE.
func (r *PropertyRepository) Create(property *models.Property, imageURLs []string) error {
	if err := validateProperty(property); err != nil {
		return err
	}
	if property.Type == "" {
		property.Type = models.PropertyTypeHouse
	}
	if property.Status == "" {
		property.Status = models.PropertyStatusAvailable
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(property).Error; err != nil {
			return err
		}
		for _, url := range imageURLs {
			if url == "" {
				continue
			}
			image := models.PropertyImage{PropertyID: property.ID, ImageURL: url}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			property.Images = append(property.Images, image)
		}
		return nil
	})
}

// PropertyUpdate carries a partial update: nil fields keep their prior
// value. A non-nil ImageURLs replaces the whole image set; nil leaves it
// untouched.
type PropertyUpdate struct {
	Title       *string
	Price       *float64
	Location    *string
	Type        *string
	AreaSqft    *int
	Bedrooms    *int
	Bathrooms   *int
	Description *string
	PhoneNumber *string
	Status      *string
	ImageURLs   *[]string
}

// Update applies the supplied fields. Replacing images deletes every
// existing row for the property before inserting the new set, in the same
// transaction, so a crash cannot leave a mixed set behind.
func (r *PropertyRepository) Update(id uint, update PropertyUpdate) (*models.Property, error) {
	var property models.Property
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if update.Title != nil {
			property.Title = *update.Title
		}
		if update.Price != nil {
			property.Price = *update.Price
		}
		if update.Location != nil {
			property.Location = *update.Location
		}
		if update.Type != nil {
			property.Type = *update.Type
		}
		if update.AreaSqft != nil {
			property.AreaSqft = *update.AreaSqft
		}
		if update.Bedrooms != nil {
			property.Bedrooms = *update.Bedrooms
		}
		if update.Bathrooms != nil {
			property.Bathrooms = *update.Bathrooms
		}
		if update.Description != nil {
			property.Description = *update.Description
		}
		if update.PhoneNumber != nil {
			property.PhoneNumber = *update.PhoneNumber
		}
		if update.Status != nil {
			property.Status = *update.Status
		}

		if err := tx.Save(&property).Error; err != nil {
			return err
		}

		if update.ImageURLs != nil {
			if err := tx.Where("property_id = ?", property.ID).Delete(&models.PropertyImage{}).Error; err != nil {
				return err
			}
			for _, url := range *update.ImageURLs {
				if url == "" {
					continue
				}
				image := models.PropertyImage{PropertyID: property.ID, ImageURL: url}
				if err := tx.Create(&image).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(id)
}

// Delete removes the property and every image it owns in one transaction.
func (r *PropertyRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, id).Error
	})
}

func validateProperty(p *models.Property) error {
	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Price <= 0 {
		missing = append(missing, "price")
	}
	if p.Location == "" {
		missing = append(missing, "location")
	}
	if p.AreaSqft <= 0 {
		missing = append(missing, "areaSqft")
	}
	if p.PhoneNumber == "" {
		missing = append(missing, "phoneNumber")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
