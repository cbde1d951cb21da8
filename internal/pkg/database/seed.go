package database

import (
	"log"

	"brand-directory-api/app/models"
	"brand-directory-api/app/repository"
)

func strPtr(s string) *string { return &s }

// demoBrands returns the demo rows inserted into an empty directory
func demoBrands() []models.Brand {
	return []models.Brand{
		{BrandName: "Jackpot BOB", BrandImage: strPtr("https://example.com/jackpot-bob.png"), Rating: 5, CountryCode: "FR"},
		{BrandName: "Madnix", BrandImage: strPtr("https://example.com/madnix.png"), Rating: 4, CountryCode: "FR"},
		{BrandName: "Winoui Casino", BrandImage: strPtr("https://example.com/winoui.png"), Rating: 4, CountryCode: "FR"},
		{BrandName: "Wild Sultan", BrandImage: strPtr("https://example.com/wild-sultan.png"), Rating: 4, CountryCode: "FR"},
		{BrandName: "Cresus Casino", BrandImage: strPtr("https://example.com/cresus.png"), Rating: 4, CountryCode: "FR"},
	}
}

// SeedBrands inserts the demo brand rows when the directory is empty.
// Seeding is idempotent: any existing row skips the whole batch.
func SeedBrands(repo repository.BrandRepository) {
	count, err := repo.Count()
	if err != nil {
		log.Printf("Warning: could not check brands table before seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	brands := demoBrands()
	for i := range brands {
		if err := repo.Create(&brands[i]); err != nil {
			log.Printf("Warning: could not seed brand %q: %v", brands[i].BrandName, err)
			return
		}
	}
	log.Printf("Seeded %d demo brands", len(brands))
}
