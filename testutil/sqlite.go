// Package testutil opens in-memory SQLite databases shaped like the production
// schema so packages can exercise their gorm code without Postgres.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables are created from SQLite-compatible DDL instead of AutoMigrate because
// the model tags carry PostgreSQL defaults such as gen_random_uuid(). Money
// columns are TEXT so decimals round-trip without float conversion.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS "users" (
		"id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL UNIQUE,
		"password" TEXT NOT NULL,
		"name" TEXT,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		"deleted_at" DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON "users"("deleted_at")`,

	`CREATE TABLE IF NOT EXISTS "categories" (
		"id" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL UNIQUE,
		"slug" TEXT NOT NULL UNIQUE,
		"description" TEXT,
		"image" TEXT,
		"is_active" INTEGER DEFAULT 1,
		"sort_order" INTEGER DEFAULT 0,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		"deleted_at" DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_deleted_at ON "categories"("deleted_at")`,

	`CREATE TABLE IF NOT EXISTS "products" (
		"id" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"slug" TEXT NOT NULL UNIQUE,
		"description" TEXT,
		"short_description" TEXT,
		"price" TEXT NOT NULL,
		"sale_price" TEXT,
		"sku" TEXT NOT NULL UNIQUE,
		"stock_quantity" INTEGER DEFAULT 0,
		"images" TEXT,
		"material" TEXT,
		"color" TEXT,
		"dimensions" TEXT,
		"weight" TEXT,
		"category_id" TEXT NOT NULL,
		"is_featured" INTEGER DEFAULT 0,
		"is_active" INTEGER DEFAULT 1,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		"deleted_at" DATETIME,
		CONSTRAINT fk_products_category FOREIGN KEY ("category_id") REFERENCES "categories"("id")
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_deleted_at ON "products"("deleted_at")`,
	`CREATE INDEX IF NOT EXISTS idx_products_category_id ON "products"("category_id")`,

	`CREATE TABLE IF NOT EXISTS "cart_items" (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"product_id" TEXT NOT NULL,
		"quantity" INTEGER NOT NULL DEFAULT 1,
		"unit_price" TEXT NOT NULL,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		CONSTRAINT fk_cart_items_product FOREIGN KEY ("product_id") REFERENCES "products"("id")
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_items_user_product ON "cart_items"("user_id", "product_id")`,
}

// Open returns an in-memory database with the storefront schema, for callers
// without a testing.TB such as TestMain. The pool is pinned to one connection
// so every goroutine sees the same tables.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := CreateSchema(db); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// OpenSQLite is Open for a single test; the database is closed on cleanup.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := Open()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateSchema applies the SQLite DDL to db.
func CreateSchema(db *gorm.DB) error {
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Reset deletes every row, children first.
func Reset(db *gorm.DB) {
	db.Exec("DELETE FROM cart_items")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM users")
}
