package order

import "github.com/shopspring/decimal"

// CreateOrderRequest payload of order creation. Items carry the catalog
// snapshots chosen on the form; totalAmount is the form's computed total.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName    string           `json:"customerName"    example:"Wang"`
	CustomerGender  string           `json:"customerGender"  example:"Ms."`
	CustomerPhone   string           `json:"customerPhone"   example:"0912345678"`
	Items           []LineItem       `json:"items"`
	TotalAmount     *decimal.Decimal `json:"totalAmount"     copier:"-" swaggertype:"number" example:"1400"`
	PaymentStatus   PaymentStatus    `json:"paymentStatus"   binding:"omitempty,payment_status"`
	NeedsDelivery   bool             `json:"needsDelivery"`
	DeliveryAddress *string          `json:"deliveryAddress"`
	DeliveryTime    *Instant         `json:"deliveryTime"    swaggertype:"string"`
	PickupDateTime  *Instant         `json:"pickupDateTime"  swaggertype:"string" example:"2025-06-01T10:00"`
	Notes           string           `json:"notes"`
	OrderStatus     Status           `json:"orderStatus"     binding:"omitempty,order_status"`
}

// UpdateOrderRequest payload of partial update. Omitted fields keep their value.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	CustomerName    *string          `json:"customerName"`
	CustomerGender  *string          `json:"customerGender"`
	CustomerPhone   *string          `json:"customerPhone"`
	Items           []LineItem       `json:"items"`
	TotalAmount     *decimal.Decimal `json:"totalAmount"   swaggertype:"number"`
	PaymentStatus   *PaymentStatus   `json:"paymentStatus" binding:"omitempty,payment_status"`
	NeedsDelivery   *bool            `json:"needsDelivery"`
	DeliveryAddress *string          `json:"deliveryAddress"`
	DeliveryTime    *Instant         `json:"deliveryTime"   swaggertype:"string"`
	PickupDateTime  *Instant         `json:"pickupDateTime" swaggertype:"string"`
	Notes           *string          `json:"notes"`
	OrderStatus     *Status          `json:"orderStatus"   binding:"omitempty,order_status"`
}

func (in UpdateOrderRequest) touchesFulfillment() bool {
	return in.NeedsDelivery != nil || in.DeliveryAddress != nil || in.DeliveryTime != nil || in.PickupDateTime != nil
}

// CreateOrderResponse swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	Message   string `json:"message"`
	OrderID   string `json:"orderId"`
	DisplayID string `json:"displayId"`
}
