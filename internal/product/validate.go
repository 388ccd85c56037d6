package product

import (
	"errors"
	"strings"
)

// validationError communicates rule violations back to HTTP handlers.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation separates rule violations from store failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}

// NewFromRequest applies the catalog entry rules: a known kind, a name, and a
// non-negative price for priced kinds. Fillings never keep a price.
func NewFromRequest(in CreateProductRequest) (*Product, error) {
	if !in.Type.Valid() {
		return nil, newValidationError("invalid product type")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, newValidationError("product name is required")
	}
	p := &Product{Type: in.Type, Name: name}
	if in.Type.Priced() {
		if in.Price == nil || in.Price.IsNegative() {
			return nil, newValidationError("cake types and sizes require a non-negative price")
		}
		price := *in.Price
		p.Price = &price
	}
	return p, nil
}

// ApplyUpdate merges a partial update into cur. Only a negative price is
// rejected; a priced kind left without a price is accepted as before.
func ApplyUpdate(cur Product, in UpdateProductRequest) (Product, error) {
	if in.Type != nil {
		if !in.Type.Valid() {
			return cur, newValidationError("invalid product type")
		}
		cur.Type = *in.Type
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return cur, newValidationError("product name is required")
		}
		cur.Name = name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return cur, newValidationError("invalid product price")
		}
		price := *in.Price
		cur.Price = &price
	}
	if !cur.Type.Priced() {
		cur.Price = nil
	}
	return cur, nil
}
