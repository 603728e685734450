package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/models"
)

func TestMemoryStoreServesSeedData(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	customers, err := s.Customers(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, customers)

	invoices, err := s.Invoices(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, invoices)

	revenue, err := s.Revenue(ctx)
	require.NoError(t, err)
	assert.Len(t, revenue, 12)
}

func TestMemoryStoreDemoWritesAreNoOps(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	before, err := s.Invoices(ctx)
	require.NoError(t, err)

	require.NoError(t, s.CreateInvoice(ctx, models.Invoice{
		CustomerID: "c-new", Amount: 4200, Status: models.StatusPending, Date: "2024-01-01",
	}))
	key := InvoiceKey{CustomerID: before[0].CustomerID, Date: before[0].Date, Amount: before[0].Amount}
	require.NoError(t, s.UpdateInvoice(ctx, key, models.Invoice{Status: models.StatusPaid}))
	require.NoError(t, s.DeleteInvoice(ctx, key))

	after, err := s.Invoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.True(t, s.Demo())
}

func TestMemoryStoreReadsReturnCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	invoices, err := s.Invoices(ctx)
	require.NoError(t, err)
	invoices[0].Amount = -1

	again, err := s.Invoices(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, int64(-1), again[0].Amount)
}

func TestMemoryStoreUserByEmail(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	user, err := s.UserByEmail(ctx, "user@nextmail.com")
	require.NoError(t, err)
	assert.Equal(t, "User", user.Name)

	// lookup is case-insensitive
	_, err = s.UserByEmail(ctx, "USER@nextmail.com")
	assert.NoError(t, err)

	_, err = s.UserByEmail(ctx, "nobody@nextmail.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSeedDataTriplesAreUnique(t *testing.T) {
	// Display ids are derived from (customer, date, amount); the dataset must
	// not contain duplicates or ids would collide.
	seen := map[InvoiceKey]bool{}
	for _, inv := range SeedData().Invoices {
		key := InvoiceKey{CustomerID: inv.CustomerID, Date: inv.Date, Amount: inv.Amount}
		assert.False(t, seen[key], "duplicate triple %+v", key)
		seen[key] = true
	}
}
