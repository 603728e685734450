package store

import (
	"context"
	"strings"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/models"
)

// MemoryStore serves the placeholder dataset. Reads hand out copies so the
// backing collections stay immutable; writes succeed without persisting
// anything, which keeps the demo's create/update/delete flows intact.
type MemoryStore struct {
	customers []models.Customer
	invoices  []models.Invoice
	revenue   []models.Revenue
	users     []models.User
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWith(SeedData())
}

func NewMemoryStoreWith(data Dataset) *MemoryStore {
	return &MemoryStore{
		customers: data.Customers,
		invoices:  data.Invoices,
		revenue:   data.Revenue,
		users:     data.Users,
	}
}

func (s *MemoryStore) Customers(ctx context.Context) ([]models.Customer, error) {
	return append([]models.Customer(nil), s.customers...), nil
}

func (s *MemoryStore) Invoices(ctx context.Context) ([]models.Invoice, error) {
	return append([]models.Invoice(nil), s.invoices...), nil
}

func (s *MemoryStore) Revenue(ctx context.Context) ([]models.Revenue, error) {
	return append([]models.Revenue(nil), s.revenue...), nil
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// Demo-mode writes: accepted, never applied.

func (s *MemoryStore) CreateInvoice(ctx context.Context, inv models.Invoice) error {
	return nil
}

func (s *MemoryStore) UpdateInvoice(ctx context.Context, key InvoiceKey, inv models.Invoice) error {
	return nil
}

func (s *MemoryStore) DeleteInvoice(ctx context.Context, key InvoiceKey) error {
	return nil
}

func (s *MemoryStore) Demo() bool { return true }
