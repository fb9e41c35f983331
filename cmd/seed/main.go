// Command seed fills the catalog with a small demo tree of categories and
// products so the api has something to serve locally.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/gostorefront/catalog/config"
	"github.com/gostorefront/catalog/database"
	"github.com/gostorefront/catalog/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system environment")
	}
	cfg := config.LoadEnv()

	db, err := database.Open(cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	categories := models.NewCategoriesRepository(db)
	products := models.NewProductsRepository(db)

	clothing := &models.Category{Name: "Clothing"}
	shoes := &models.Category{Name: "Shoes"}
	for _, c := range []*models.Category{clothing, shoes} {
		if err := categories.CreateCategory(c); err != nil {
			log.Fatalf("failed to create category %q: %v", c.Name, err)
		}
	}

	jackets := &models.Category{Name: "Jackets", ParentID: &clothing.ID}
	if err := categories.CreateCategory(jackets); err != nil {
		log.Fatalf("failed to create category %q: %v", jackets.Name, err)
	}

	discontinued := false
	seedProducts := []*models.Product{
		{
			CategoryID:  shoes.ID,
			Title:       "Air Runner",
			Slug:        "air-runner",
			Description: "Lightweight running shoe.",
			Brand:       "Acme",
			Price:       decimal.NewFromFloat(19.99),
		},
		{
			CategoryID: jackets.ID,
			Title:      "Down Jacket",
			Slug:       "down-jacket",
			Brand:      "Plainwear",
			Price:      decimal.NewFromFloat(95.50),
		},
		{
			CategoryID: clothing.ID,
			Title:      "Retro Tee",
			Slug:       "retro-tee",
			Brand:      "Plainwear",
			Available:  &discontinued,
		},
	}
	for _, p := range seedProducts {
		if err := products.CreateProduct(p); err != nil {
			log.Fatalf("failed to create product %q: %v", p.Title, err)
		}
	}

	log.Printf("seeded %d categories and %d products", 3, len(seedProducts))
}
