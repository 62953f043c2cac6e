package customer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bugstore/pkg/customer"
	"bugstore/pkg/customer/memory"
)

// faultyRepo fails every write, simulating a broken store.
type faultyRepo struct {
	customer.Repository
}

var errStore = errors.New("simulated store error")

func (faultyRepo) Create(ctx context.Context, c customer.Customer) error { return errStore }

func (faultyRepo) Update(ctx context.Context, c customer.Customer) error { return errStore }

func (faultyRepo) Delete(ctx context.Context, id string) error { return errStore }

func newCreateRequest() customer.CreateRequest {
	return customer.CreateRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+55 11 99999-0001",
		BirthDate: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateReturnsPersistedCustomer(t *testing.T) {
	ctx := context.Background()
	h := customer.NewHandler(memory.New())
	req := newCreateRequest()

	resp := h.Create(ctx, req)
	require.True(t, resp.IsSuccess())
	require.NotNil(t, resp.Data)
	require.NotEmpty(t, resp.Data.ID)
	require.Equal(t, req.Name, resp.Data.Name)
	require.Equal(t, req.Email, resp.Data.Email)
	require.Equal(t, req.Phone, resp.Data.Phone)
	require.Equal(t, req.BirthDate, resp.Data.BirthDate)

	got := h.GetByID(ctx, resp.Data.ID)
	require.True(t, got.IsSuccess())
	require.NotNil(t, got.Data)
	require.Equal(t, *resp.Data, *got.Data)
}

func TestCreatePersistenceFailureEmbedsError(t *testing.T) {
	h := customer.NewHandler(faultyRepo{Repository: memory.New()})

	resp := h.Create(context.Background(), newCreateRequest())
	require.False(t, resp.IsSuccess())
	require.Nil(t, resp.Data)
	require.Contains(t, resp.Message, errStore.Error())
}

func TestUpdateMissingCustomer(t *testing.T) {
	h := customer.NewHandler(memory.New())

	resp := h.Update(context.Background(), customer.UpdateRequest{ID: "missing", Name: "Nobody"})
	require.False(t, resp.IsSuccess())
	require.Nil(t, resp.Data)
	require.Equal(t, "Customer not found.", resp.Message)
}

func TestUpdateOverwritesFields(t *testing.T) {
	ctx := context.Background()
	h := customer.NewHandler(memory.New())
	created := h.Create(ctx, newCreateRequest())
	require.True(t, created.IsSuccess())

	resp := h.Update(ctx, customer.UpdateRequest{
		ID:        created.Data.ID,
		Name:      "Jane Smith",
		Email:     "jane.smith@example.com",
		Phone:     "+55 11 99999-0002",
		BirthDate: created.Data.BirthDate,
	})
	require.True(t, resp.IsSuccess())
	require.Equal(t, "Jane Smith", resp.Data.Name)

	got := h.GetByID(ctx, created.Data.ID)
	require.Equal(t, "jane.smith@example.com", got.Data.Email)
}

func TestDeleteMissingCustomer(t *testing.T) {
	h := customer.NewHandler(memory.New())

	resp := h.Delete(context.Background(), "missing")
	require.False(t, resp.IsSuccess())
	require.Nil(t, resp.Data)
	require.Equal(t, "Customer not found.", resp.Message)
}

func TestDeleteReturnsRemovedSnapshot(t *testing.T) {
	ctx := context.Background()
	h := customer.NewHandler(memory.New())
	created := h.Create(ctx, newCreateRequest())
	require.True(t, created.IsSuccess())

	resp := h.Delete(ctx, created.Data.ID)
	require.True(t, resp.IsSuccess())
	require.Equal(t, *created.Data, *resp.Data)

	// A later lookup finds nothing, silently.
	got := h.GetByID(ctx, created.Data.ID)
	require.True(t, got.IsSuccess())
	require.Nil(t, got.Data)
}

func TestGetByIDMissingIsSilent(t *testing.T) {
	h := customer.NewHandler(memory.New())

	resp := h.GetByID(context.Background(), "missing")
	require.True(t, resp.IsSuccess())
	require.Nil(t, resp.Data)
	require.Empty(t, resp.Message)
}

func TestListIsIdempotent(t *testing.T) {
	ctx := context.Background()
	h := customer.NewHandler(memory.New())
	h.Create(ctx, newCreateRequest())

	first := h.List(ctx)
	second := h.List(ctx)
	require.True(t, first.IsSuccess())
	require.Equal(t, first, second)
}
