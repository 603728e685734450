package store

import (
	"context"
	"errors"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// InvoiceKey identifies an invoice by the triple the dashboard derives its
// display id from. Uniqueness of the triple is a precondition on the dataset.
type InvoiceKey struct {
	CustomerID string
	Date       string
	Amount     int64
}

// Store is the data-access boundary for the dashboard. The reference
// collections are loaded once at construction and never mutated by reads.
// Write support is capability-gated: the in-memory store accepts writes but
// discards them (demo mode), the database-backed store persists them.
type Store interface {
	Customers(ctx context.Context) ([]models.Customer, error)
	Invoices(ctx context.Context) ([]models.Invoice, error)
	Revenue(ctx context.Context) ([]models.Revenue, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)

	CreateInvoice(ctx context.Context, inv models.Invoice) error
	UpdateInvoice(ctx context.Context, key InvoiceKey, inv models.Invoice) error
	DeleteInvoice(ctx context.Context, key InvoiceKey) error

	// Demo reports whether writes are accepted without being persisted.
	Demo() bool
}
