package order

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Instant is a point in time that also accepts the zone-less
// "2006-01-02T15:04" values posted by datetime-local inputs. Those keep only
// their wall clock until anchored to the bakery's location.
type Instant struct {
	time.Time
	floating bool
}

var instantLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

func (i *Instant) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*i = Instant{}
		return nil
	}
	s := strings.Trim(string(data), `"`)
	if s == "" {
		*i = Instant{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*i = Instant{Time: t}
		return nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*i = Instant{Time: t, floating: true}
			return nil
		}
	}
	return fmt.Errorf("invalid date-time: %s", s)
}

func (i Instant) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + i.Format(time.RFC3339) + `"`), nil
}

// anchor reads a zone-less value as wall clock time in loc. Values that
// came with an offset are left alone.
func (i *Instant) anchor(loc *time.Location) {
	if i == nil || !i.floating || loc == nil {
		return
	}
	t := i.Time
	i.Time = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	i.floating = false
}

func instantPtr(t *time.Time) *Instant {
	if t == nil || t.IsZero() {
		return nil
	}
	return &Instant{Time: *t}
}

func timePtr(i *Instant) *time.Time {
	if i == nil || i.IsZero() {
		return nil
	}
	t := i.Time
	return &t
}

// ProductSnapshot is a copy of a priced catalog entry taken when the order
// was written. Later catalog edits do not reach it.
type ProductSnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

type FillingSnapshot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LineItem struct {
	CakeType    ProductSnapshot `json:"cakeType"`
	CakeSize    ProductSnapshot `json:"cakeSize"`
	CakeFilling FillingSnapshot `json:"cakeFilling"`
	Quantity    int             `json:"quantity"`
}

// UnitPrice is the type price plus the size price of one cake.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.CakeType.Price.Add(li.CakeSize.Price)
}

func (li LineItem) Selection() Selection {
	return Selection{TypePrice: li.CakeType.Price, SizePrice: li.CakeSize.Price, Quantity: li.Quantity}
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentDeposit PaymentStatus = "deposit"
	PaymentPaid    PaymentStatus = "paid"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentUnpaid, PaymentDeposit, PaymentPaid:
		return true
	}
	return false
}

type Order struct {
	ID              string          `json:"id"`
	DisplayID       string          `json:"displayId"`
	CustomerName    string          `json:"customerName"`
	CustomerGender  string          `json:"customerGender"`
	CustomerPhone   string          `json:"customerPhone"`
	Items           []LineItem      `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	NeedsDelivery   bool            `json:"needsDelivery"`
	DeliveryAddress *string         `json:"deliveryAddress"`
	DeliveryTime    *Instant        `json:"deliveryTime" swaggertype:"string"`
	PickupDateTime  *Instant        `json:"pickupDateTime" swaggertype:"string"`
	Notes           string          `json:"notes"`
	OrderStatus     Status          `json:"orderStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// FulfillmentTime is the delivery time for delivery orders and the pickup
// time otherwise. ok is false when the relevant value was never set.
func (o Order) FulfillmentTime() (time.Time, bool) {
	var at *Instant
	if o.NeedsDelivery {
		at = o.DeliveryTime
	} else {
		at = o.PickupDateTime
	}
	if at == nil || at.IsZero() {
		return time.Time{}, false
	}
	return at.Time, true
}

// DisplayIDFor derives the short human-facing id from a store id.
func DisplayIDFor(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// Label falls back to a derived short id for rows written without one.
func (o Order) Label() string {
	if o.DisplayID != "" {
		return o.DisplayID
	}
	return DisplayIDFor(o.ID)
}
