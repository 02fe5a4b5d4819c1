package database

import (
	"fmt"

	"furnico-backend/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const placeholderImage = "/placeholder-furniture.jpg"

type seedProduct struct {
	Name             string
	Slug             string
	Description      string
	ShortDescription string
	Price            string
	SalePrice        string
	SKU              string
	Stock            int
	Material         string
	Color            string
	Dimensions       string
	Weight           string
	Featured         bool
}

type seedCategory struct {
	Name        string
	Slug        string
	Description string
	SortOrder   int
	Products    []seedProduct
}

var furnitureCatalog = []seedCategory{
	{
		Name: "Chairs", Slug: "chairs", SortOrder: 1,
		Description: "Comfortable and stylish chairs for your home and office",
		Products: []seedProduct{
			{
				Name: "Executive Office Chair", Slug: "executive-office-chair",
				Description:      "Ergonomic office chair with lumbar support and adjustable height",
				ShortDescription: "Comfortable office chair for long working hours",
				Price:            "8999.00", SalePrice: "7499.00", SKU: "CHR-EXE-001", Stock: 25,
				Material: "Fabric & Metal", Color: "Black", Dimensions: "60 x 65 x 110 cm", Weight: "15.5",
				Featured: true,
			},
			{
				Name: "Plastic Dining Chair", Slug: "plastic-dining-chair",
				Description:      "Durable plastic chair perfect for dining and outdoor use",
				ShortDescription: "Lightweight and stackable dining chair",
				Price:            "1299.00", SKU: "CHR-DIN-002", Stock: 50,
				Material: "Plastic", Color: "White", Dimensions: "45 x 50 x 85 cm", Weight: "2.5",
			},
		},
	},
	{
		Name: "Tables", Slug: "tables", SortOrder: 2,
		Description: "Dining tables, coffee tables, and office tables",
		Products: []seedProduct{
			{
				Name: "Round Dining Table", Slug: "round-dining-table",
				Description:      "Beautiful round dining table for 4 people",
				ShortDescription: "Perfect for family dining",
				Price:            "12999.00", SKU: "TBL-DIN-001", Stock: 15,
				Material: "Wood", Color: "Brown", Dimensions: "120 x 120 x 75 cm", Weight: "25.0",
				Featured: true,
			},
			{
				Name: "Study Table", Slug: "study-table",
				Description:      "Compact study table with drawer storage",
				ShortDescription: "Perfect for students and home office",
				Price:            "4999.00", SalePrice: "3999.00", SKU: "TBL-STD-002", Stock: 30,
				Material: "Engineered Wood", Color: "Walnut", Dimensions: "100 x 60 x 75 cm", Weight: "18.0",
				Featured: true,
			},
		},
	},
	{
		Name: "Storage", Slug: "storage", SortOrder: 3,
		Description: "Wardrobes, cabinets, and storage solutions",
		Products: []seedProduct{
			{
				Name: "3 Door Wardrobe", Slug: "3-door-wardrobe",
				Description:      "Spacious wardrobe with hanging space and shelves",
				ShortDescription: "Large storage wardrobe for bedroom",
				Price:            "18999.00", SKU: "STO-WAR-001", Stock: 8,
				Material: "Engineered Wood", Color: "White", Dimensions: "150 x 55 x 200 cm", Weight: "45.0",
			},
		},
	},
	{
		Name: "Stools", Slug: "stools", SortOrder: 4,
		Description: "Bar stools and kitchen stools",
		Products: []seedProduct{
			{
				Name: "Bar Stool", Slug: "bar-stool",
				Description:      "Modern bar stool with adjustable height",
				ShortDescription: "Stylish bar stool for kitchen counter",
				Price:            "2499.00", SKU: "STL-BAR-001", Stock: 20,
				Material: "Metal & Plastic", Color: "Black", Dimensions: "40 x 40 x 85 cm", Weight: "4.5",
				Featured: true,
			},
		},
	},
	{
		Name: "Outdoor", Slug: "outdoor", SortOrder: 5,
		Description: "Garden and outdoor furniture",
		Products: []seedProduct{
			{
				Name: "Garden Chair", Slug: "garden-chair",
				Description:      "Weather-resistant outdoor chair",
				ShortDescription: "Durable chair for garden and patio",
				Price:            "1899.00", SKU: "OUT-CHR-001", Stock: 35,
				Material: "Plastic", Color: "Green", Dimensions: "55 x 60 x 85 cm", Weight: "3.0",
			},
		},
	},
}

func nullDecimal(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// SeedCatalog inserts the furniture categories and products that are not
// already present. Categories are matched by slug, products by SKU, so running
// it again is a no-op.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var before int64
		if err := tx.Model(&models.Product{}).Count(&before).Error; err != nil {
			return err
		}

		for _, sc := range furnitureCatalog {
			category := models.Category{
				Name:        sc.Name,
				Slug:        sc.Slug,
				Description: sc.Description,
				IsActive:    true,
				SortOrder:   sc.SortOrder,
			}
			if err := tx.Where(models.Category{Slug: sc.Slug}).FirstOrCreate(&category).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", sc.Slug, err)
			}

			for _, sp := range sc.Products {
				product := models.Product{
					Name:             sp.Name,
					Slug:             sp.Slug,
					Description:      sp.Description,
					ShortDescription: sp.ShortDescription,
					Price:            decimal.RequireFromString(sp.Price),
					SalePrice:        nullDecimal(sp.SalePrice),
					SKU:              sp.SKU,
					StockQuantity:    sp.Stock,
					Images:           []string{placeholderImage},
					Material:         sp.Material,
					Color:            sp.Color,
					Dimensions:       sp.Dimensions,
					Weight:           nullDecimal(sp.Weight),
					CategoryID:       category.ID,
					IsFeatured:       sp.Featured,
					IsActive:         true,
				}
				if err := tx.Where(models.Product{SKU: sp.SKU}).FirstOrCreate(&product).Error; err != nil {
					return fmt.Errorf("seed product %s: %w", sp.SKU, err)
				}
			}
		}

		var after int64
		if err := tx.Model(&models.Product{}).Count(&after).Error; err != nil {
			return err
		}
		zap.L().Info("catalog seeded", zap.Int64("products_created", after-before))
		return nil
	})
}
