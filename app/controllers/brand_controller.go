package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"brand-directory-api/app/models"
	"brand-directory-api/app/repository"
	"brand-directory-api/internal/pkg/cache"
	"brand-directory-api/internal/pkg/env"
	"brand-directory-api/internal/pkg/geo"
	"brand-directory-api/internal/pkg/pagination"
)

// BrandController handles the brand directory HTTP requests using the
// repository pattern
type BrandController struct {
	repo  repository.BrandRepository
	cache cache.BrandCache

	// placeholderFallback serves a fixed demo dataset on the list endpoint
	// when no usable country signal exists. Degraded mode, off by default.
	placeholderFallback bool
}

// NewBrandController creates a new brand controller with its collaborators
func NewBrandController(repo repository.BrandRepository, brandCache cache.BrandCache, placeholderFallback bool) *BrandController {
	return &BrandController{
		repo:                repo,
		cache:               brandCache,
		placeholderFallback: placeholderFallback,
	}
}

var brandController *BrandController

// InitializeBrandController wires the controller to the global repository
// factory and the redis cache
func InitializeBrandController() {
	brandController = NewBrandController(
		repository.GetGlobalFactory().GetBrandRepository(),
		cache.NewBrandCache(),
		env.GetEnvBool("PLACEHOLDER_FALLBACK", false),
	)
}

// GetBrandController returns the initialized brand controller instance
func GetBrandController() *BrandController {
	if brandController == nil {
		panic("Brand controller not initialized. Call InitializeBrandController first.")
	}
	return brandController
}

// brandRequest is the create/update request body. Country is the fallback
// location parameter, CountryCode the client's self-resolved country.
type brandRequest struct {
	BrandName   string  `json:"brand_name"`
	BrandImage  *string `json:"brand_image"`
	Rating      int     `json:"rating"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
}

// resolveCountry reads the edge header and the request fallback parameter
func (bc *BrandController) resolveCountry(c *fiber.Ctx, bodyCountry string) geo.Config {
	fallback := c.Query("country")
	if fallback == "" {
		fallback = bodyCountry
	}
	return geo.Resolve(c.Get(geo.HeaderName), fallback)
}

func withBonus(brand models.Brand, cfg geo.Config) models.BrandResponse {
	return models.BrandResponse{Brand: brand, Bonus: cfg.Bonus, Country: cfg.Name}
}

// HandleListBrands serves GET /api/brands with the paginated, country
// annotated brand list
func (bc *BrandController) HandleListBrands(c *fiber.Ctx) error {
	params := pagination.Sanitize(c.QueryInt("page", 1), c.QueryInt("per_page", pagination.DefaultPerPage))

	header := c.Get(geo.HeaderName)
	fallback := c.Query("country")

	if bc.placeholderFallback && !geo.Usable(header, fallback) {
		return bc.servePlaceholderPage(c, params)
	}

	cfg := geo.Resolve(header, fallback)

	key := cache.PageKey(params.Page, params.PerPage, cfg.Name)
	if cached, ok := bc.cache.GetPage(key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	total, err := bc.repo.Count()
	if err != nil {
		return serverError(c, "Error loading brands")
	}
	brands, err := bc.repo.List(params.Offset(), params.PerPage)
	if err != nil {
		return serverError(c, "Error loading brands")
	}

	data := make([]models.BrandResponse, 0, len(brands))
	for _, brand := range brands {
		data = append(data, withBonus(brand, cfg))
	}

	envelope := pagination.NewEnvelope(c.Path(), params, total, data)
	payload, err := json.Marshal(envelope)
	if err != nil {
		return serverError(c, "Error loading brands")
	}
	bc.cache.SetPage(key, string(payload))

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

// servePlaceholderPage returns the demo dataset in the normal envelope shape
// without touching the repository
func (bc *BrandController) servePlaceholderPage(c *fiber.Ctx, params pagination.Params) error {
	placeholders := placeholderBrands()
	total := int64(len(placeholders))

	from := params.Offset()
	to := from + params.PerPage
	if from > len(placeholders) {
		from = len(placeholders)
	}
	if to > len(placeholders) {
		to = len(placeholders)
	}

	envelope := pagination.NewEnvelope(c.Path(), params, total, placeholders[from:to])
	return c.JSON(envelope)
}

func placeholderBrands() []models.BrandResponse {
	imageURL := func(n int) *string {
		url := fmt.Sprintf("https://example.com/default%d.jpg", n)
		return &url
	}
	return []models.BrandResponse{
		{Brand: models.Brand{ID: 1, BrandName: "Default Casino 1", BrandImage: imageURL(1), Rating: 5}, Bonus: geo.DefaultConfig.Bonus, Country: geo.DefaultConfig.Name},
		{Brand: models.Brand{ID: 2, BrandName: "Default Casino 2", BrandImage: imageURL(2), Rating: 4}, Bonus: geo.DefaultConfig.Bonus, Country: geo.DefaultConfig.Name},
		{Brand: models.Brand{ID: 3, BrandName: "Default Casino 3", BrandImage: imageURL(3), Rating: 4}, Bonus: geo.DefaultConfig.Bonus, Country: geo.DefaultConfig.Name},
	}
}

// HandleGetBrand serves GET /api/brands/:id
func (bc *BrandController) HandleGetBrand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return notFound(c, "Brand not found")
	}

	brand, err := bc.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Brand not found")
		}
		return serverError(c, "Error loading brand")
	}

	cfg := bc.resolveCountry(c, "")
	return c.JSON(withBonus(*brand, cfg))
}

// HandleCreateBrand serves POST /api/brands
func (bc *BrandController) HandleCreateBrand(c *fiber.Ctx) error {
	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, map[string][]string{
			"body": {"The request body could not be parsed."},
		})
	}

	brand := models.Brand{
		BrandName:   strings.TrimSpace(req.BrandName),
		BrandImage:  req.BrandImage,
		Rating:      req.Rating,
		CountryCode: normalizeCountryCode(req.CountryCode),
	}

	if fieldErrors := bc.validateBrand(&brand, 0); len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	if err := bc.repo.Create(&brand); err != nil {
		return serverError(c, "Error creating brand")
	}
	bc.cache.InvalidateAll()

	cfg := bc.resolveCountry(c, req.Country)
	return c.Status(fiber.StatusCreated).JSON(withBonus(brand, cfg))
}

// HandleUpdateBrand serves PUT /api/brands/:id
func (bc *BrandController) HandleUpdateBrand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return notFound(c, "Brand not found")
	}

	brand, err := bc.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Brand not found")
		}
		return serverError(c, "Error updating brand")
	}

	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, map[string][]string{
			"body": {"The request body could not be parsed."},
		})
	}

	// Full replace of the editable fields
	brand.BrandName = strings.TrimSpace(req.BrandName)
	brand.BrandImage = req.BrandImage
	brand.Rating = req.Rating

	if fieldErrors := bc.validateBrand(brand, brand.ID); len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	if err := bc.repo.Update(brand); err != nil {
		return serverError(c, "Error updating brand")
	}
	bc.cache.InvalidateAll()

	cfg := bc.resolveCountry(c, req.Country)
	return c.JSON(withBonus(*brand, cfg))
}

// HandleDeleteBrand serves DELETE /api/brands/:id
func (bc *BrandController) HandleDeleteBrand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return notFound(c, "Brand not found")
	}

	if _, err := bc.repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Brand not found")
		}
		return serverError(c, "Error deleting brand")
	}

	if err := bc.repo.Delete(uint(id)); err != nil {
		return serverError(c, "Error deleting brand")
	}
	bc.cache.InvalidateAll()

	return c.SendStatus(fiber.StatusNoContent)
}

// validateBrand runs field validation plus the uniqueness check. exceptID is
// zero on create and the record's own id on update.
func (bc *BrandController) validateBrand(brand *models.Brand, exceptID uint) map[string][]string {
	fieldErrors := map[string][]string{}

	if err := brand.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field := jsonFieldName(fe.Field())
				fieldErrors[field] = append(fieldErrors[field], validationMessage(fe))
			}
		} else {
			fieldErrors["body"] = append(fieldErrors["body"], err.Error())
		}
	}

	if _, taken := fieldErrors["brand_name"]; !taken && brand.BrandName != "" {
		var exists bool
		var err error
		if exceptID == 0 {
			exists, err = bc.repo.NameExists(brand.BrandName)
		} else {
			exists, err = bc.repo.NameExistsExceptID(brand.BrandName, exceptID)
		}
		if err != nil {
			fieldErrors["brand_name"] = append(fieldErrors["brand_name"], "The brand name could not be verified.")
		} else if exists {
			fieldErrors["brand_name"] = append(fieldErrors["brand_name"], "The brand name has already been taken.")
		}
	}

	return fieldErrors
}

func jsonFieldName(structField string) string {
	switch structField {
	case "BrandName":
		return "brand_name"
	case "BrandImage":
		return "brand_image"
	case "Rating":
		return "rating"
	}
	return strings.ToLower(structField)
}

func validationMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		if field == "rating" {
			return "The rating may not be greater than 5."
		}
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "min":
		return "The rating must be at least 1."
	case "url":
		return "The brand image must be a valid URL."
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}

// normalizeCountryCode keeps a two-letter, non-sentinel code for persistence
// and drops everything else
func normalizeCountryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 || code == geo.SentinelUnknown || code == geo.SentinelTor {
		return ""
	}
	return code
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "not_found",
		"message": message,
	})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_server_error",
		"message": message,
	})
}

func validationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "The given data was invalid.",
		"errors":  fieldErrors,
	})
}
