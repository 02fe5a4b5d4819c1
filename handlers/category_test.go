package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"furnico-backend/models"
	"furnico-backend/testutil"
)

func TestGetCategoriesList(t *testing.T) {
	db := freshDB()
	router := setupCatalogRouter(db)

	tables := seedCategory(db, "Tables", 2)
	chairs := seedCategory(db, "Chairs", 1)
	seedProduct(db, "Desk", tables.ID, "250.00")
	seedProduct(db, "Office Chair", chairs.ID, "150.00")
	retired := seedProduct(db, "Old Chair", chairs.ID, "10.00")
	deactivate(db, &models.Product{}, retired.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	categories := parseResponseArray(w)
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	first := categories[0].(map[string]interface{})
	if first["name"] != "Chairs" {
		t.Errorf("expected Chairs first by sort_order, got %v", first["name"])
	}
	if int(first["active_products_count"].(float64)) != 1 {
		t.Errorf("expected 1 active chair, got %v", first["active_products_count"])
	}
}

func TestGetCategoriesExcludesInactive(t *testing.T) {
	db := freshDB()
	router := setupCatalogRouter(db)

	seedCategory(db, "Chairs", 1)
	hidden := seedCategory(db, "Lighting", 2)
	deactivate(db, &models.Category{}, hidden.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories", nil))

	if categories := parseResponseArray(w); len(categories) != 1 {
		t.Errorf("expected only the active category, got %d", len(categories))
	}
}

func TestGetCategoriesEmpty(t *testing.T) {
	db := freshDB()
	router := setupCatalogRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected empty JSON array, got %s", w.Body.String())
	}
}

func TestGetCategoryBySlugWithProducts(t *testing.T) {
	db := freshDB()
	router := setupCatalogRouter(db)

	cat := seedCategory(db, "Storage", 1)
	seedProduct(db, "Oak Bookshelf", cat.ID, "220.00")
	seedProduct(db, "Shoe Cabinet", cat.ID, "90.00")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories/storage", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	category := resp["category"].(map[string]interface{})
	if category["name"] != "Storage" {
		t.Errorf("expected Storage, got %v", category["name"])
	}
	page := productsPage(t, resp)
	if int(page["total"].(float64)) != 2 {
		t.Errorf("expected 2 products, got %v", page["total"])
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	db := freshDB()
	router := setupCatalogRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories/sofas", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
	if resp := parseResponse(w); resp["error"] != "Category not found" {
		t.Errorf("expected 'Category not found', got %v", resp["error"])
	}
}

func TestGetCategoriesDBError(t *testing.T) {
	db := freshDB()

	// Drop the categories table to force a DB error; freshDB restores it.
	db.Exec("DROP TABLE categories")
	defer testutil.CreateSchema(db)

	router := setupCatalogRouter(db)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["error"] != "Failed to fetch categories" {
		t.Errorf("expected 'Failed to fetch categories', got %v", resp["error"])
	}
}
