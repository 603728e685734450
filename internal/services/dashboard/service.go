package dashboard

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/models"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/store"
)

const (
	// ItemsPerPage is the invoice table page size.
	ItemsPerPage = 6
	latestCount  = 5

	defaultRevenueDelay = 3 * time.Second
)

// Service answers the dashboard's read queries against the injected store and
// synthesizes the per-invoice display ids.
type Service struct {
	store        store.Store
	logger       *zap.Logger
	revenueDelay time.Duration
}

type Option func(*Service)

// WithRevenueDelay overrides the artificial delay of Revenue. Tests pass 0.
func WithRevenueDelay(d time.Duration) Option {
	return func(s *Service) { s.revenueDelay = d }
}

func NewService(st store.Store, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store:        st,
		logger:       logger,
		revenueDelay: defaultRevenueDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InvoiceSummary is an invoice row joined with its customer, amount already
// formatted for display.
type InvoiceSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Date     string `json:"date,omitempty"`
	Status   string `json:"status,omitempty"`
	Amount   string `json:"amount"`
}

// InvoiceForm is the edit-form shape of a resolved invoice; the amount is in
// dollars, the way the form presents it.
type InvoiceForm struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type CardData struct {
	NumberOfInvoices  int    `json:"number_of_invoices"`
	NumberOfCustomers int    `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid"`
	TotalPending      string `json:"total_pending"`
}

// CustomerSummary is a customer row augmented with its invoice aggregates.
type CustomerSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

type CustomerName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Revenue returns the static revenue series. It waits a few seconds first to
// exercise the UI's loading states; an abandoned request cancels the wait.
func (s *Service) Revenue(ctx context.Context) ([]models.Revenue, error) {
	s.logger.Info("fetching revenue data")
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.revenueDelay):
	}

	revenue, err := s.store.Revenue(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return nil, fetchFailed("Failed to fetch revenue data.", err)
	}
	return revenue, nil
}

// LatestInvoices returns the five most recent invoices, newest first.
func (s *Service) LatestInvoices(ctx context.Context) ([]InvoiceSummary, error) {
	invoices, customers, err := s.load(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return nil, fetchFailed("Failed to fetch the latest invoices.", err)
	}

	sortByDateDesc(invoices)
	if len(invoices) > latestCount {
		invoices = invoices[:latestCount]
	}

	latest := make([]InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		row := s.summarize(inv, customers)
		row.Date = ""
		row.Status = ""
		latest = append(latest, row)
	}
	return latest, nil
}

// FilteredInvoices returns one page of invoices matching the free-text query,
// newest first. Page numbering starts at 1.
func (s *Service) FilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceSummary, error) {
	invoices, customers, err := s.load(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return nil, fetchFailed("Failed to fetch invoices.", err)
	}

	filtered := filterInvoices(invoices, customers, query)
	sortByDateDesc(filtered)

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage
	if offset >= len(filtered) {
		return []InvoiceSummary{}, nil
	}
	end := offset + ItemsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}

	rows := make([]InvoiceSummary, 0, end-offset)
	for _, inv := range filtered[offset:end] {
		rows = append(rows, s.summarize(inv, customers))
	}
	return rows, nil
}

// InvoicePages returns how many pages of results the query yields.
func (s *Service) InvoicePages(ctx context.Context, query string) (int, error) {
	invoices, customers, err := s.load(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return 0, fetchFailed("Failed to fetch total number of invoices.", err)
	}

	filtered := filterInvoices(invoices, customers, query)
	return (len(filtered) + ItemsPerPage - 1) / ItemsPerPage, nil
}

// ResolveInvoiceID maps a display id back to the invoice it was derived from,
// in the shape the edit form needs.
func (s *Service) ResolveInvoiceID(ctx context.Context, id string) (*InvoiceForm, error) {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return nil, fetchFailed("Failed to fetch invoice.", err)
	}

	_, inv, err := resolveKey(id, invoices)
	if err != nil {
		return nil, err
	}
	return &InvoiceForm{
		ID:         id,
		CustomerID: inv.CustomerID,
		Amount:     float64(inv.Amount) / 100,
		Status:     inv.Status,
	}, nil
}

// ResolveInvoiceKey is ResolveInvoiceID for the write path: it yields the
// store key of the matching invoice.
func (s *Service) ResolveInvoiceKey(ctx context.Context, id string) (store.InvoiceKey, error) {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return store.InvoiceKey{}, fetchFailed("Failed to fetch invoice.", err)
	}

	key, _, err := resolveKey(id, invoices)
	return key, err
}

// CardData computes the dashboard's four summary cards.
func (s *Service) CardData(ctx context.Context) (*CardData, error) {
	invoices, customers, err := s.load(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return nil, fetchFailed("Failed to fetch card data.", err)
	}

	var paid, pending int64
	for _, inv := range invoices {
		switch inv.Status {
		case models.StatusPaid:
			paid += inv.Amount
		case models.StatusPending:
			pending += inv.Amount
		}
	}

	return &CardData{
		NumberOfInvoices:  len(invoices),
		NumberOfCustomers: len(customers),
		TotalPaid:         FormatCurrency(paid),
		TotalPending:      FormatCurrency(pending),
	}, nil
}

// CustomerNames lists all customers as id/name pairs for the invoice form
// dropdown, ordered by name.
func (s *Service) CustomerNames(ctx context.Context) ([]CustomerName, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return nil, fetchFailed("Failed to fetch all customers.", err)
	}

	names := make([]CustomerName, 0, len(customers))
	for _, c := range customers {
		names = append(names, CustomerName{ID: c.ID, Name: c.Name})
	}
	sortByName(names, func(n CustomerName) string { return n.Name })
	return names, nil
}

// FilteredCustomers returns the customer table: customers matching the query,
// each with invoice count and paid/pending totals, ordered by name.
func (s *Service) FilteredCustomers(ctx context.Context, query string) ([]CustomerSummary, error) {
	invoices, customers, err := s.load(ctx)
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		return nil, fetchFailed("Failed to fetch customer table.", err)
	}

	q := strings.ToLower(query)
	summaries := make([]CustomerSummary, 0, len(customers))
	for _, c := range customers {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}

		var total int
		var paid, pending int64
		for _, inv := range invoices {
			if inv.CustomerID != c.ID {
				continue
			}
			total++
			switch inv.Status {
			case models.StatusPaid:
				paid += inv.Amount
			case models.StatusPending:
				pending += inv.Amount
			}
		}

		summaries = append(summaries, CustomerSummary{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: total,
			TotalPending:  FormatCurrency(pending),
			TotalPaid:     FormatCurrency(paid),
		})
	}
	sortByName(summaries, func(cs CustomerSummary) string { return cs.Name })
	return summaries, nil
}

func (s *Service) load(ctx context.Context) ([]models.Invoice, []models.Customer, error) {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, nil, err
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, nil, err
	}
	return invoices, customers, nil
}

func (s *Service) summarize(inv models.Invoice, customers []models.Customer) InvoiceSummary {
	name, email, image := "Unknown", "", ""
	if c := customerByID(customers, inv.CustomerID); c != nil {
		name, email, image = c.Name, c.Email, c.ImageURL
	}
	return InvoiceSummary{
		ID:       DeriveInvoiceID(inv),
		Name:     name,
		Email:    email,
		ImageURL: image,
		Date:     inv.Date,
		Status:   inv.Status,
		Amount:   FormatCurrency(inv.Amount),
	}
}

func customerByID(customers []models.Customer, id string) *models.Customer {
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i]
		}
	}
	return nil
}

// filterInvoices keeps invoices whose customer name, customer email, amount,
// date or status contains the query, case-insensitively. A missing customer
// contributes empty name/email.
func filterInvoices(invoices []models.Invoice, customers []models.Customer, query string) []models.Invoice {
	if query == "" {
		return invoices
	}
	q := strings.ToLower(query)

	filtered := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		var name, email string
		if c := customerByID(customers, inv.CustomerID); c != nil {
			name, email = c.Name, c.Email
		}
		if strings.Contains(strings.ToLower(name), q) ||
			strings.Contains(strings.ToLower(email), q) ||
			strings.Contains(strconv.FormatInt(inv.Amount, 10), q) ||
			strings.Contains(inv.Date, q) ||
			strings.Contains(strings.ToLower(inv.Status), q) {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}

// sortByDateDesc sorts newest first. ISO-8601 date strings compare correctly
// as strings; the sort is stable so ties keep their dataset order.
func sortByDateDesc(invoices []models.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date > invoices[j].Date
	})
}

// sortByName orders by display name with en-US collation, matching the
// locale-aware ordering the customer table always had.
func sortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.AmericanEnglish)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}
