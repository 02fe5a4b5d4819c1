package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PerPage is the storefront listing page size.
const PerPage = 12

// ParsePage reads ?page= from the query, falling back to 1 for anything that
// is not a positive integer.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate is a gorm scope limiting a query to one page of PerPage rows.
func Paginate(page int) func(db *gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * PerPage).Limit(PerPage)
	}
}

func LastPage(total int64) int {
	if total == 0 {
		return 1
	}
	return int((total + PerPage - 1) / PerPage)
}
