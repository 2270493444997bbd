package smartstore

import (
	"fmt"
	"strings"
)

// ListingInput is the loosely-typed record the engine receives for a single
// product, typically mapped from one spreadsheet row. Category can be a
// free-text path ("식품 > 과자/간식 > 과자") or an already-canonical numeric id.
type ListingInput struct {
	Name            string
	Category        string
	SalePrice       int
	StockQuantity   int
	Images          []string
	DetailContent   string
	Brand           string
	Manufacturer    string
	SaleStatus      string
	DisplayStatus   string
	DeliveryMethod  string
	DeliveryCompany string
	DeliveryFee     int
	Origin          string
	// CatchingWaters is upstream marine origin detail ("원양산" waters). It is
	// dropped unless the resolved category is a marine goods category.
	CatchingWaters string
}

// VariantInput is one purchasable entry of a grouped listing.
type VariantInput struct {
	Name          string
	Option        string
	SalePrice     int
	StockQuantity int
	Images        []string
	Origin        string
	SaleStatus    string
}

// GroupListingInput describes a grouped listing: variants share one
// category, description and delivery terms, and carry their own price,
// stock, images and origin.
type GroupListingInput struct {
	GroupName       string
	Category        string
	DetailContent   string
	DeliveryMethod  string
	DeliveryCompany string
	DeliveryFee     int
	Origin          string
	Variants        []VariantInput
}

// ValidationError reports a problem the caller can fix. Assembly stops on
// the first batch of these; they are never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// AsValidationErrors unwraps err into ValidationErrors if possible.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	switch v := err.(type) {
	case ValidationErrors:
		return v, true
	case *ValidationError:
		return ValidationErrors{v}, true
	default:
		return nil, false
	}
}
