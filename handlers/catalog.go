package handlers

import (
	"furnico-backend/dtos"
	"furnico-backend/models"
	"furnico-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// whereSlugOrID matches a route parameter against id when it parses as a UUID,
// otherwise against slug.
func whereSlugOrID(db *gorm.DB, param string) *gorm.DB {
	if id, err := uuid.Parse(param); err == nil {
		return db.Where("id = ?", id)
	}
	return db.Where("slug = ?", param)
}

func findActiveCategory(db *gorm.DB, param string) (models.Category, error) {
	var category models.Category
	err := whereSlugOrID(db, param).Where("is_active = ?", true).First(&category).Error
	return category, err
}

// activeProductsPage returns one page of active products, with their category
// preloaded, after applying filter.
func activeProductsPage(db *gorm.DB, page int, filter func(*gorm.DB) *gorm.DB) (dtos.Page[models.Product], error) {
	query := db.Model(&models.Product{}).Where("products.is_active = ?", true)
	if filter != nil {
		query = filter(query)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return dtos.Page[models.Product]{}, err
	}

	var products []models.Product
	if err := query.Preload("Category").
		Order("products.name").
		Scopes(utils.Paginate(page)).
		Find(&products).Error; err != nil {
		return dtos.Page[models.Product]{}, err
	}
	return dtos.NewPage(products, total, page), nil
}

type categoryCount struct {
	CategoryID uuid.UUID
	Count      int64
}

func activeProductCounts(db *gorm.DB) (map[uuid.UUID]int64, error) {
	var rows []categoryCount
	if err := db.Model(&models.Product{}).
		Select("category_id, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}

// categorySummaries lists active categories by sort_order with their active
// product counts. limit <= 0 means no limit.
func categorySummaries(db *gorm.DB, limit int) ([]dtos.CategorySummary, error) {
	query := db.Where("is_active = ?", true).Order("sort_order").Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}

	counts, err := activeProductCounts(db)
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.CategorySummary, 0, len(categories))
	for _, cat := range categories {
		summaries = append(summaries, dtos.CategorySummary{
			ID:                  cat.ID,
			Name:                cat.Name,
			Slug:                cat.Slug,
			Description:         cat.Description,
			Image:               cat.Image,
			ActiveProductsCount: counts[cat.ID],
		})
	}
	return summaries, nil
}
