package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fengcheng-bakery/cake-orders/internal/product"
)

// Selection is what one line of an order form contributes to the total.
type Selection struct {
	TypePrice decimal.Decimal
	SizePrice decimal.Decimal
	Quantity  int
}

// Total sums (typePrice + sizePrice) * quantity over selections that have a
// priced type, a priced size and a positive quantity. Anything else adds 0.
func Total(selections []Selection) decimal.Decimal {
	total := decimal.Zero
	for _, s := range selections {
		if !s.TypePrice.IsPositive() || !s.SizePrice.IsPositive() || s.Quantity <= 0 {
			continue
		}
		total = total.Add(s.TypePrice.Add(s.SizePrice).Mul(decimal.NewFromInt(int64(s.Quantity))))
	}
	return total
}

// ItemsTotal re-prices stored line items from their own snapshots.
func ItemsTotal(items []LineItem) decimal.Decimal {
	sel := make([]Selection, 0, len(items))
	for _, it := range items {
		sel = append(sel, it.Selection())
	}
	return Total(sel)
}

// QuoteLine is one form row as posted: catalog ids and a raw quantity.
// swagger:model QuoteLine
type QuoteLine struct {
	CakeTypeID    string       `json:"cakeTypeId"`
	CakeSizeID    string       `json:"cakeSizeId"`
	CakeFillingID string       `json:"cakeFillingId"`
	Quantity      FormQuantity `json:"quantity" swaggertype:"integer" example:"2"`
}

// QuoteRequest swagger:model QuoteRequest
type QuoteRequest struct {
	Items []QuoteLine `json:"items"`
}

// Quote is the priced result of a set of form rows.
// swagger:model Quote
type Quote struct {
	Items       []LineItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"number"`
}

// FormQuantity accepts a number or a numeric string. Anything unparsable
// decodes to 0, which excludes the row from the total.
type FormQuantity int

func (q *FormQuantity) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(strings.Trim(string(data), `"`))
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		*q = FormQuantity(n)
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= 1 {
		*q = FormQuantity(int(f))
		return nil
	}
	*q = 0
	return nil
}

// BuildQuote resolves rows against snap and returns snapshotted line items
// with their total. A row naming an id missing from the catalog is a
// validation error; an empty selection just contributes nothing.
func BuildQuote(snap product.Snapshot, lines []QuoteLine) (Quote, error) {
	q := Quote{Items: make([]LineItem, 0, len(lines))}
	sel := make([]Selection, 0, len(lines))
	for i, ln := range lines {
		var it LineItem
		if ln.CakeTypeID != "" {
			p, ok := snap.Find(product.KindCakeType, ln.CakeTypeID)
			if !ok {
				return Quote{}, newValidationError(fmt.Sprintf("item %d: unknown cake type %s", i+1, ln.CakeTypeID))
			}
			it.CakeType = priced(p)
		}
		if ln.CakeSizeID != "" {
			p, ok := snap.Find(product.KindCakeSize, ln.CakeSizeID)
			if !ok {
				return Quote{}, newValidationError(fmt.Sprintf("item %d: unknown cake size %s", i+1, ln.CakeSizeID))
			}
			it.CakeSize = priced(p)
		}
		if ln.CakeFillingID != "" {
			p, ok := snap.Find(product.KindCakeFilling, ln.CakeFillingID)
			if !ok {
				return Quote{}, newValidationError(fmt.Sprintf("item %d: unknown cake filling %s", i+1, ln.CakeFillingID))
			}
			it.CakeFilling = FillingSnapshot{ID: p.ID, Name: p.Name}
		}
		it.Quantity = int(ln.Quantity)
		q.Items = append(q.Items, it)
		sel = append(sel, it.Selection())
	}
	q.TotalAmount = Total(sel)
	return q, nil
}

func priced(p product.Product) ProductSnapshot {
	s := ProductSnapshot{ID: p.ID, Name: p.Name}
	if p.Price != nil {
		s.Price = *p.Price
	}
	return s
}
