package product

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices and totals go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind is the catalog bucket a product belongs to.
type Kind string

const (
	KindCakeType    Kind = "cakeType"
	KindCakeSize    Kind = "cakeSize"
	KindCakeFilling Kind = "cakeFilling"
)

var kinds = []Kind{KindCakeType, KindCakeSize, KindCakeFilling}

// Valid reports whether k is one of the three catalog kinds.
func (k Kind) Valid() bool {
	for _, v := range kinds {
		if k == v {
			return true
		}
	}
	return false
}

// Priced kinds contribute to an order total and must carry a price.
func (k Kind) Priced() bool {
	return k == KindCakeType || k == KindCakeSize
}

type Product struct {
	ID   string `json:"id"`
	Type Kind   `json:"type"`
	Name string `json:"name"`
	// nil for fillings
	Price     *decimal.Decimal `json:"price"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Type  Kind             `json:"type"  binding:"required,product_kind" example:"cakeType"`
	Name  string           `json:"name"  example:"Chocolate"`
	Price *decimal.Decimal `json:"price" swaggertype:"number" example:"500"`
}

// UpdateProductRequest payload of partial update. Omitted fields keep their value.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Type  *Kind            `json:"type"  binding:"omitempty,product_kind"`
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price" swaggertype:"number"`
}

// CreateProductResponse mirrors the message/id shape used by the order endpoints.
// swagger:model CreateProductResponse
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}
