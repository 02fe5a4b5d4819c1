package cart

import (
	"testing"

	"furnico-backend/models"
	"furnico-backend/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	engine *Engine
}

func newFixture(t testing.TB) fixture {
	db := testutil.OpenSQLite(t)
	return fixture{
		db:     db,
		engine: NewEngine(NewGormStore(db), NewGormCatalog(db), zap.NewNop()),
	}
}

func (f fixture) seedCategory(t testing.TB, name string) models.Category {
	t.Helper()
	cat := models.Category{Name: name, Slug: "cat-" + uuid.NewString()[:8], IsActive: true}
	require.NoError(t, f.db.Create(&cat).Error)
	return cat
}

// seedProduct creates a product priced at price; sale may be "" for none.
func (f fixture) seedProduct(t testing.TB, name, price, sale string) models.Product {
	t.Helper()
	cat := f.seedCategory(t, name+" Category")
	p := models.Product{
		Name:          name,
		Slug:          "p-" + uuid.NewString()[:8],
		SKU:           "SKU-" + uuid.NewString()[:8],
		Price:         decimal.RequireFromString(price),
		StockQuantity: 10,
		Images:        []string{"/img/" + name + ".jpg"},
		CategoryID:    cat.ID,
		IsActive:      true,
	}
	if sale != "" {
		p.SalePrice = decimal.NewNullDecimal(decimal.RequireFromString(sale))
	}
	require.NoError(t, f.db.Create(&p).Error)
	return p
}

func (f fixture) setSalePrice(t testing.TB, productID uuid.UUID, sale string) {
	t.Helper()
	require.NoError(t, f.db.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("sale_price", decimal.RequireFromString(sale)).Error)
}

func (f fixture) countLines(t testing.TB, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.CartItem{}).Where(where, args...).Count(&n).Error)
	return n
}

func requireDecimal(t testing.TB, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s", want, got)
}
