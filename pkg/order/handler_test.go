package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"bugstore/pkg/customer"
	customermem "bugstore/pkg/customer/memory"
	"bugstore/pkg/order"
	ordermem "bugstore/pkg/order/memory"
	"bugstore/pkg/product"
	productmem "bugstore/pkg/product/memory"
)

// faultyRepo fails on Create, simulating a broken store.
type faultyRepo struct {
	order.Repository
}

var errStore = errors.New("simulated store error")

func (faultyRepo) Create(ctx context.Context, o order.Order) error { return errStore }

type fixture struct {
	handler   *order.Handler
	customers *customermem.Repository
	products  *productmem.Repository
	orders    *ordermem.Repository

	customer customer.Customer
	widget   product.Product
	gadget   product.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		customers: customermem.New(),
		products:  productmem.New(),
	}
	f.orders = ordermem.New(f.customers, f.products)
	f.handler = order.NewHandler(f.orders, f.products)

	f.customer = customer.Customer{
		ID:        "cust-1",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+55 11 99999-0001",
		BirthDate: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.customers.Create(ctx, f.customer))

	f.widget = product.Product{
		ID: "prod-1", Title: "Widget", Description: "First product",
		Slug: "widget", Price: decimal.RequireFromString("10.50"),
	}
	f.gadget = product.Product{
		ID: "prod-2", Title: "Gadget", Description: "Second product",
		Slug: "gadget", Price: decimal.RequireFromString("22.50"),
	}
	require.NoError(t, f.products.Create(ctx, f.widget))
	require.NoError(t, f.products.Create(ctx, f.gadget))

	return f
}

func lineFor(t *testing.T, o *order.Order, productID string) order.Line {
	t.Helper()
	for _, line := range o.Lines {
		if line.ProductID == productID {
			return line
		}
	}
	t.Fatalf("no line for product %s", productID)
	return order.Line{}
}

func TestCreateSnapshotsLineTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp := f.handler.Create(ctx, order.CreateRequest{
		CustomerID: f.customer.ID,
		Lines: []order.CreateLineRequest{
			{ProductID: f.widget.ID, Quantity: 2},
			{ProductID: f.gadget.ID, Quantity: 3},
		},
	})
	require.True(t, resp.IsSuccess())
	require.NotNil(t, resp.Data)
	require.NotEmpty(t, resp.Data.ID)
	require.Equal(t, f.customer.ID, resp.Data.CustomerID)
	require.False(t, resp.Data.CreatedAt.IsZero())
	require.Len(t, resp.Data.Lines, 2)

	widgetLine := lineFor(t, resp.Data, f.widget.ID)
	gadgetLine := lineFor(t, resp.Data, f.gadget.ID)
	require.True(t, decimal.RequireFromString("21.00").Equal(widgetLine.Total),
		"widget total = %s", widgetLine.Total)
	require.True(t, decimal.RequireFromString("67.50").Equal(gadgetLine.Total),
		"gadget total = %s", gadgetLine.Total)
}

func TestCreateUnknownProductYieldsZeroTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp := f.handler.Create(ctx, order.CreateRequest{
		CustomerID: f.customer.ID,
		Lines: []order.CreateLineRequest{
			{ProductID: "not-in-catalog", Quantity: 5},
		},
	})
	require.True(t, resp.IsSuccess())
	require.Len(t, resp.Data.Lines, 1)
	require.True(t, resp.Data.Lines[0].Total.IsZero())
}

func TestCreatePersistenceFailureReturnsGenericMessage(t *testing.T) {
	f := newFixture(t)
	h := order.NewHandler(faultyRepo{Repository: f.orders}, f.products)

	resp := h.Create(context.Background(), order.CreateRequest{
		CustomerID: f.customer.ID,
		Lines:      []order.CreateLineRequest{{ProductID: f.widget.ID, Quantity: 1}},
	})
	require.False(t, resp.IsSuccess())
	require.Nil(t, resp.Data)
	require.Equal(t, "an error occurred while registering the order", resp.Message)
	require.NotContains(t, resp.Message, errStore.Error())
}

func TestGetByIDEagerLoadsRelations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created := f.handler.Create(ctx, order.CreateRequest{
		CustomerID: f.customer.ID,
		Lines: []order.CreateLineRequest{
			{ProductID: f.widget.ID, Quantity: 2},
			{ProductID: f.gadget.ID, Quantity: 3},
		},
	})
	require.True(t, created.IsSuccess())

	resp := f.handler.GetByID(ctx, created.Data.ID)
	require.True(t, resp.IsSuccess())
	require.NotNil(t, resp.Data.Customer)
	require.Equal(t, f.customer, *resp.Data.Customer)
	for _, line := range resp.Data.Lines {
		require.NotNil(t, line.Product, "line %s has no product", line.ID)
	}
}

func TestGetByIDMissingOrder(t *testing.T) {
	f := newFixture(t)

	resp := f.handler.GetByID(context.Background(), "missing")
	require.False(t, resp.IsSuccess())
	require.Nil(t, resp.Data)
	require.Equal(t, "no order found.", resp.Message)
}

func TestLineTotalsAreFrozenSnapshots(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created := f.handler.Create(ctx, order.CreateRequest{
		CustomerID: f.customer.ID,
		Lines:      []order.CreateLineRequest{{ProductID: f.widget.ID, Quantity: 2}},
	})
	require.True(t, created.IsSuccess())

	// Raise the price after the order was placed.
	f.widget.Price = decimal.RequireFromString("99.99")
	require.NoError(t, f.products.Update(ctx, f.widget))

	resp := f.handler.GetByID(ctx, created.Data.ID)
	require.True(t, resp.IsSuccess())
	require.True(t, decimal.RequireFromString("21.00").Equal(resp.Data.Lines[0].Total))
}

func TestGetByIDIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created := f.handler.Create(ctx, order.CreateRequest{
		CustomerID: f.customer.ID,
		Lines:      []order.CreateLineRequest{{ProductID: f.widget.ID, Quantity: 1}},
	})
	require.True(t, created.IsSuccess())

	first := f.handler.GetByID(ctx, created.Data.ID)
	second := f.handler.GetByID(ctx, created.Data.ID)
	require.Equal(t, first, second)
}
