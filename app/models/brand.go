package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Brand represents a casino brand listed in the directory
type Brand struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BrandName   string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"brand_name" validate:"required,max=255"`
	BrandImage  *string   `gorm:"type:varchar(1000)" json:"brand_image" validate:"omitempty,url,max=1000"`
	Rating      int       `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	CountryCode string    `gorm:"type:varchar(2)" json:"country_code,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Brand model
func (Brand) TableName() string {
	return "brands"
}

func (b *Brand) Validate() error {
	v := validator.New()
	return v.Struct(b)
}

// BrandResponse is a Brand plus the per-request overlay fields. Bonus and
// Country depend on the requesting client's location and are never persisted.
type BrandResponse struct {
	Brand
	Bonus   string `json:"bonus"`
	Country string `json:"country"`
}
