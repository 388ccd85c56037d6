package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
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

// NewFromRequest checks an order form and maps it onto a fresh Order. Zone-less
// times are read in loc. Id, display id and timestamps are left for the caller
// to stamp.
func NewFromRequest(in CreateOrderRequest, loc *time.Location) (*Order, error) {
	if in.TotalAmount == nil || in.TotalAmount.IsNegative() {
		return nil, newValidationError("invalid order total")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, newValidationError("customer name is required")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, newValidationError("customer phone is required")
	}
	if len(in.Items) == 0 {
		return nil, newValidationError("at least one order item is required")
	}
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}

	var o Order
	if err := copier.Copy(&o, &in); err != nil {
		return nil, fmt.Errorf("map order request: %w", err)
	}
	o.CustomerName = strings.TrimSpace(o.CustomerName)
	o.CustomerPhone = strings.TrimSpace(o.CustomerPhone)
	o.Notes = strings.TrimSpace(o.Notes)
	o.TotalAmount = *in.TotalAmount
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentUnpaid
	}
	if o.OrderStatus == "" {
		o.OrderStatus = StatusPending
	}
	if !o.PaymentStatus.Valid() {
		return nil, newValidationError("invalid payment status")
	}
	if !o.OrderStatus.Valid() {
		return nil, newValidationError("invalid order status")
	}

	o.DeliveryTime.anchor(loc)
	o.PickupDateTime.anchor(loc)
	normalizeFulfillment(&o)
	if err := validateFulfillment(o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ApplyUpdate merges a partial edit into cur and returns the previous status.
// A negative total, unknown enum values and incomplete items are rejected, as
// is an edit that leaves the chosen fulfillment side without its details.
func ApplyUpdate(cur Order, in UpdateOrderRequest, loc *time.Location) (Order, Status, error) {
	prev := cur.OrderStatus
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return cur, prev, newValidationError("invalid order total")
		}
		cur.TotalAmount = *in.TotalAmount
	}
	if in.Items != nil {
		if len(in.Items) == 0 {
			return cur, prev, newValidationError("at least one order item is required")
		}
		if err := validateItems(in.Items); err != nil {
			return cur, prev, err
		}
		cur.Items = in.Items
	}
	if in.CustomerName != nil {
		cur.CustomerName = strings.TrimSpace(*in.CustomerName)
	}
	if in.CustomerGender != nil {
		cur.CustomerGender = *in.CustomerGender
	}
	if in.CustomerPhone != nil {
		cur.CustomerPhone = strings.TrimSpace(*in.CustomerPhone)
	}
	if in.Notes != nil {
		cur.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.PaymentStatus != nil {
		if !in.PaymentStatus.Valid() {
			return cur, prev, newValidationError("invalid payment status")
		}
		cur.PaymentStatus = *in.PaymentStatus
	}
	if in.OrderStatus != nil {
		if _, err := cur.TransitionTo(*in.OrderStatus); err != nil {
			return cur, prev, newValidationError("invalid order status")
		}
	}
	if in.NeedsDelivery != nil {
		cur.NeedsDelivery = *in.NeedsDelivery
	}
	if in.DeliveryAddress != nil {
		cur.DeliveryAddress = in.DeliveryAddress
	}
	if in.DeliveryTime != nil {
		in.DeliveryTime.anchor(loc)
		cur.DeliveryTime = in.DeliveryTime
	}
	if in.PickupDateTime != nil {
		in.PickupDateTime.anchor(loc)
		cur.PickupDateTime = in.PickupDateTime
	}
	normalizeFulfillment(&cur)
	if in.touchesFulfillment() {
		if err := validateFulfillment(cur); err != nil {
			return cur, prev, err
		}
	}
	return cur, prev, nil
}

func validateItems(items []LineItem) error {
	for i, it := range items {
		if it.CakeType.ID == "" || it.CakeSize.ID == "" || it.CakeFilling.ID == "" {
			return newValidationError(fmt.Sprintf("item %d is incomplete", i+1))
		}
		if it.Quantity < 1 {
			return newValidationError(fmt.Sprintf("item %d quantity must be at least 1", i+1))
		}
		if it.CakeType.Price.IsNegative() || it.CakeSize.Price.IsNegative() {
			return newValidationError(fmt.Sprintf("item %d has a negative price", i+1))
		}
	}
	return nil
}

// normalizeFulfillment keeps only the side selected by NeedsDelivery.
func normalizeFulfillment(o *Order) {
	if o.NeedsDelivery {
		o.PickupDateTime = nil
		if o.DeliveryAddress != nil {
			addr := strings.TrimSpace(*o.DeliveryAddress)
			o.DeliveryAddress = &addr
		}
		return
	}
	o.DeliveryAddress = nil
	o.DeliveryTime = nil
}

func validateFulfillment(o Order) error {
	if o.NeedsDelivery {
		if o.DeliveryAddress == nil || *o.DeliveryAddress == "" || o.DeliveryTime == nil || o.DeliveryTime.IsZero() {
			return newValidationError("delivery orders need an address and a delivery time")
		}
		return nil
	}
	if o.PickupDateTime == nil || o.PickupDateTime.IsZero() {
		return newValidationError("pickup orders need a pickup time")
	}
	return nil
}
