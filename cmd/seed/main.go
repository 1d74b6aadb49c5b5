package main

import (
	"errors"
	"log"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func strptr(s string) *string { return &s }

// Seeds a small demo catalog so a fresh database has something to show on
// the dashboard. Existing rows (matched by name or SKU) are left alone, so
// running it twice is harmless.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Purchase{},
		&model.Sale{},
	); err != nil {
		log.Fatalf("Auto migration failed: %v", err)
	}

	categories := []model.Category{
		{Name: "Electronics", Description: strptr("Cables, adapters and small devices")},
		{Name: "Stationery"},
	}
	for i := range categories {
		if err := db.Where(&model.Category{Name: categories[i].Name}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", categories[i].Name, err)
		}
	}

	suppliers := []model.Supplier{
		{Name: "Acme Wholesale", ContactPerson: strptr("Jo Benton"), Email: strptr("sales@acme.example")},
		{Name: "Northside Trading"},
	}
	for i := range suppliers {
		if err := db.Where(&model.Supplier{Name: suppliers[i].Name}).
			FirstOrCreate(&suppliers[i]).Error; err != nil {
			log.Fatalf("Failed to seed supplier %q: %v", suppliers[i].Name, err)
		}
	}

	productRepo := repository.NewProductRepo(db)
	products := []model.Product{
		{
			Name:       "USB-C Cable 1m",
			SKU:        "CBL-USBC-1M",
			CategoryID: &categories[0].ID,
			SupplierID: &suppliers[0].ID,
			Quantity:   40,
			Price:      decimal.RequireFromString("4.90"),
		},
		{
			Name:       "A5 Notebook",
			SKU:        "NTB-A5",
			CategoryID: &categories[1].ID,
			SupplierID: &suppliers[1].ID,
			Quantity:   12,
			Price:      decimal.RequireFromString("2.50"),
		},
		{
			Name:     "HDMI Adapter",
			SKU:      "ADP-HDMI",
			Quantity: 3, // starts below the low-stock threshold
			Price:    decimal.RequireFromString("9.99"),
		},
	}
	for i := range products {
		_, err := productRepo.FindBySKU(products[i].SKU)
		if err == nil {
			continue
		}
		if !errors.Is(err, model.ErrNotFound) {
			log.Fatalf("Failed to check product %q: %v", products[i].SKU, err)
		}
		if err := productRepo.Create(&products[i]); err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].SKU, err)
		}
		log.Printf("Seeded product %s (%s)", products[i].Name, products[i].SKU)
	}

	log.Println("Seeding complete")
}
