package cart

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"furnico-backend/models"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cartWorld struct {
	f        fixture
	products map[string]models.Product
	users    map[string]uuid.UUID
	lines    map[string]uuid.UUID // "<user>/<product>" -> line id
	err      error
}

func (w *cartWorld) user(name string) uuid.UUID {
	id, ok := w.users[name]
	if !ok {
		id = uuid.New()
		w.users[name] = id
	}
	return id
}

func (w *cartWorld) aProductPricedWithSalePrice(name, price, sale string) error {
	cat := models.Category{Name: name + " Category", Slug: "cat-" + uuid.NewString()[:8], IsActive: true}
	if err := w.f.db.Create(&cat).Error; err != nil {
		return err
	}
	p := models.Product{
		Name:       name,
		Slug:       "p-" + uuid.NewString()[:8],
		SKU:        "SKU-" + uuid.NewString()[:8],
		Price:      decimal.RequireFromString(price),
		SalePrice:  decimal.NewNullDecimal(decimal.RequireFromString(sale)),
		CategoryID: cat.ID,
		IsActive:   true,
	}
	if err := w.f.db.Create(&p).Error; err != nil {
		return err
	}
	w.products[name] = p
	return nil
}

func (w *cartWorld) userAddsOf(user string, quantity int, product string) error {
	p, ok := w.products[product]
	if !ok {
		return fmt.Errorf("unknown product %q in scenario", product)
	}
	line, err := w.f.engine.AddItem(context.Background(), w.user(user), p.ID, quantity)
	w.err = err
	if err == nil {
		w.lines[user+"/"+product] = line.ID
	}
	return nil
}

func (w *cartWorld) userAddsOfAnUnknownProduct(user string, quantity int) error {
	_, w.err = w.f.engine.AddItem(context.Background(), w.user(user), uuid.New(), quantity)
	return nil
}

func (w *cartWorld) theSalePriceChangesTo(product, sale string) error {
	p := w.products[product]
	return w.f.db.Model(&models.Product{}).Where("id = ?", p.ID).
		Update("sale_price", decimal.RequireFromString(sale)).Error
}

func (w *cartWorld) userSetsTheLineOfTo(actor, product, owner string, quantity int) error {
	_, w.err = w.f.engine.UpdateQuantity(context.Background(), w.user(actor), w.lines[owner+"/"+product], quantity)
	return nil
}

func (w *cartWorld) userRemovesTheLineOf(actor, product, owner string) error {
	w.err = w.f.engine.RemoveItem(context.Background(), w.user(actor), w.lines[owner+"/"+product])
	return nil
}

func (w *cartWorld) userClearsTheCart(user string) error {
	w.err = w.f.engine.ClearCart(context.Background(), w.user(user))
	return nil
}

func (w *cartWorld) theOperationFailsWith(kind string) error {
	want := map[string]error{
		"invalid argument": ErrInvalidArgument,
		"not found":        ErrNotFound,
		"forbidden":        ErrForbidden,
	}[kind]
	if want == nil {
		return fmt.Errorf("unknown failure kind %q", kind)
	}
	if !errors.Is(w.err, want) {
		return fmt.Errorf("expected %v, got %v", want, w.err)
	}
	return nil
}

func (w *cartWorld) userHasOneLine(user, product string, quantity int, unitPrice, lineTotal string) error {
	c, err := w.f.engine.GetCart(context.Background(), w.user(user))
	if err != nil {
		return err
	}
	var found []Line
	for _, l := range c.Lines {
		if l.ProductID == w.products[product].ID {
			found = append(found, l)
		}
	}
	if len(found) != 1 {
		return fmt.Errorf("expected exactly one %s line, got %d", product, len(found))
	}
	l := found[0]
	if l.Quantity != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, l.Quantity)
	}
	if !l.UnitPrice.Equal(decimal.RequireFromString(unitPrice)) {
		return fmt.Errorf("expected unit price %s, got %s", unitPrice, l.UnitPrice)
	}
	if !l.LineTotal.Equal(decimal.RequireFromString(lineTotal)) {
		return fmt.Errorf("expected line total %s, got %s", lineTotal, l.LineTotal)
	}
	return nil
}

func (w *cartWorld) theCartTotalIs(user, total string) error {
	c, err := w.f.engine.GetCart(context.Background(), w.user(user))
	if err != nil {
		return err
	}
	if !c.Total.Equal(decimal.RequireFromString(total)) {
		return fmt.Errorf("expected cart total %s, got %s", total, c.Total)
	}
	return nil
}

func (w *cartWorld) theCartIsEmpty(user string) error {
	c, err := w.f.engine.GetCart(context.Background(), w.user(user))
	if err != nil {
		return err
	}
	if len(c.Lines) != 0 {
		return fmt.Errorf("expected empty cart, got %d lines", len(c.Lines))
	}
	return nil
}

func initializeScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(sc *godog.ScenarioContext) {
		w := &cartWorld{}

		sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			*w = cartWorld{
				f:        newFixture(t),
				products: map[string]models.Product{},
				users:    map[string]uuid.UUID{},
				lines:    map[string]uuid.UUID{},
			}
			return ctx, nil
		})

		sc.Step(`^a product "([^"]*)" priced ([\d.]+) with sale price ([\d.]+)$`, w.aProductPricedWithSalePrice)
		sc.Step(`^user "([^"]*)" adds (-?\d+) of "([^"]*)"$`, w.userAddsOf)
		sc.Step(`^user "([^"]*)" adds (-?\d+) of an unknown product$`, w.userAddsOfAnUnknownProduct)
		sc.Step(`^the sale price of "([^"]*)" changes to ([\d.]+)$`, w.theSalePriceChangesTo)
		sc.Step(`^user "([^"]*)" sets the "([^"]*)" line of "([^"]*)" to (-?\d+)$`, w.userSetsTheLineOfTo)
		sc.Step(`^user "([^"]*)" removes the "([^"]*)" line of "([^"]*)"$`, w.userRemovesTheLineOf)
		sc.Step(`^user "([^"]*)" clears the cart$`, w.userClearsTheCart)
		sc.Step(`^the operation fails with "([^"]*)"$`, w.theOperationFailsWith)
		sc.Step(`^user "([^"]*)" has one "([^"]*)" line with quantity (\d+), unit price ([\d.]+) and line total ([\d.]+)$`, w.userHasOneLine)
		sc.Step(`^the cart total for "([^"]*)" is ([\d.]+)$`, w.theCartTotalIs)
		sc.Step(`^the cart for "([^"]*)" is empty$`, w.theCartIsEmpty)
	}
}

func TestCartFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
