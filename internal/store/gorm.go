package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/models"
)

// GormStore is the write-accepting store variant, backed by postgres. It is
// selected when DATABASE_URL is set; invoices get a uuid surrogate key for
// persistence, which the dashboard never exposes.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// SeedIfEmpty loads the placeholder dataset into an empty database so a fresh
// instance behaves like the demo.
func (s *GormStore) SeedIfEmpty(ctx context.Context, data Dataset) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&data.Customers).Error; err != nil {
			return err
		}
		invoices := make([]models.Invoice, len(data.Invoices))
		copy(invoices, data.Invoices)
		for i := range invoices {
			invoices[i].ID = uuid.New()
		}
		if err := tx.Create(&invoices).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Revenue).Error; err != nil {
			return err
		}
		return tx.Create(&data.Users).Error
	})
}

func (s *GormStore) Customers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

func (s *GormStore) Invoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.WithContext(ctx).Find(&invoices).Error
	return invoices, err
}

func (s *GormStore) Revenue(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := s.db.WithContext(ctx).Find(&revenue).Error
	return revenue, err
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateInvoice(ctx context.Context, inv models.Invoice) error {
	inv.ID = uuid.New()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		return s.audit(tx, "create", &inv.ID, inv)
	})
}

func (s *GormStore) UpdateInvoice(ctx context.Context, key InvoiceKey, inv models.Invoice) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Invoice
		err := tx.First(&existing,
			"customer_id = ? AND date = ? AND amount = ?",
			key.CustomerID, key.Date, key.Amount).Error
		if err != nil {
			return err
		}
		updates := map[string]interface{}{
			"customer_id": inv.CustomerID,
			"amount":      inv.Amount,
			"status":      inv.Status,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		return s.audit(tx, "update", &existing.ID, inv)
	})
}

func (s *GormStore) DeleteInvoice(ctx context.Context, key InvoiceKey) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Invoice
		err := tx.First(&existing,
			"customer_id = ? AND date = ? AND amount = ?",
			key.CustomerID, key.Date, key.Amount).Error
		if err != nil {
			return err
		}
		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		return s.audit(tx, "delete", &existing.ID, existing)
	})
}

func (s *GormStore) Demo() bool { return false }

func (s *GormStore) audit(tx *gorm.DB, action string, invoiceID *uuid.UUID, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Create(&models.InvoiceAuditLog{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Action:    action,
		Payload:   datatypes.JSON(raw),
	}).Error
}
