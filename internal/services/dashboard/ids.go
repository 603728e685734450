package dashboard

import (
	"strconv"
	"strings"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/models"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/store"
)

// idSeparator joins customer id, date and amount into a display id. The
// dataset must not contain two invoices with the same triple, otherwise ids
// collide; that precondition is not enforced here.
const idSeparator = "-"

// DeriveInvoiceID synthesizes a display id for an invoice that has no
// persisted primary key, e.g. "c1-2023-01-01-1000".
func DeriveInvoiceID(inv models.Invoice) string {
	return strings.Join([]string{
		inv.CustomerID,
		inv.Date,
		strconv.FormatInt(inv.Amount, 10),
	}, idSeparator)
}

// parseInvoiceID checks that a display id has the minimal shape of a derived
// id: at least three separator-delimited tokens with an integer amount at the
// end. Both customer ids and ISO dates contain the separator themselves, so
// the parse cannot recover field boundaries; matching an id back to an
// invoice is done by re-deriving (see resolveKey).
func parseInvoiceID(id string) error {
	parts := strings.Split(id, idSeparator)
	if len(parts) < 3 {
		return ErrInvalidIDFormat
	}
	if _, err := strconv.ParseInt(parts[len(parts)-1], 10, 64); err != nil {
		return ErrInvalidIDFormat
	}
	return nil
}

// resolveKey finds the invoice whose derived id equals the given one and
// returns its lookup key.
func resolveKey(id string, invoices []models.Invoice) (store.InvoiceKey, *models.Invoice, error) {
	if err := parseInvoiceID(id); err != nil {
		return store.InvoiceKey{}, nil, err
	}
	for i := range invoices {
		if DeriveInvoiceID(invoices[i]) == id {
			inv := invoices[i]
			return store.InvoiceKey{
				CustomerID: inv.CustomerID,
				Date:       inv.Date,
				Amount:     inv.Amount,
			}, &inv, nil
		}
	}
	return store.InvoiceKey{}, nil, ErrNotFound
}
