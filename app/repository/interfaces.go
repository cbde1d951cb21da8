package repository

import (
	"brand-directory-api/app/models"

	"gorm.io/gorm"
)

// BrandRepository defines the interface for brand-related database operations
type BrandRepository interface {
	Create(brand *models.Brand) error
	GetByID(id uint) (*models.Brand, error)
	List(offset, limit int) ([]models.Brand, error)
	Update(brand *models.Brand) error
	Delete(id uint) error
	Count() (int64, error)
	NameExists(name string) (bool, error)
	NameExistsExceptID(name string, id uint) (bool, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Brand BrandRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Brand: NewBrandRepository(db),
	}
}
