package repository

import (
	"brand-directory-api/app/models"

	"gorm.io/gorm"
)

// brandRepository implements the BrandRepository interface
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository instance
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

// Create inserts a new brand into the database
func (r *brandRepository) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// GetByID retrieves a brand by its ID
func (r *brandRepository) GetByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// List retrieves brands ordered by rating (best first, stable by id)
// with pagination
func (r *brandRepository) List(offset, limit int) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Order("rating DESC, id ASC").
		Offset(offset).Limit(limit).Find(&brands).Error
	return brands, err
}

// Update saves the full brand record
func (r *brandRepository) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

// Delete removes a brand by its ID. The brand model carries no soft-delete
// column, so this is a hard delete.
func (r *brandRepository) Delete(id uint) error {
	return r.db.Delete(&models.Brand{}, id).Error
}

// Count returns the total number of brands
func (r *brandRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Brand{}).Count(&count).Error
	return count, err
}

// NameExists checks if a brand name is already taken
func (r *brandRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Brand{}).Where("brand_name = ?", name).Count(&count).Error
	return count > 0, err
}

// NameExistsExceptID checks if a brand name exists excluding a specific ID
func (r *brandRepository) NameExistsExceptID(name string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Brand{}).Where("brand_name = ? AND id != ?", name, id).Count(&count).Error
	return count > 0, err
}
