package main

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	ord "github.com/fengcheng-bakery/cake-orders/internal/order"
	prod "github.com/fengcheng-bakery/cake-orders/internal/product"
)

var registerOnce sync.Once

// registerValidators adds the enum tags used in request binding
// (product_kind, order_status, payment_status) to gin's validator.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("product_kind", func(fl validator.FieldLevel) bool {
			return prod.Kind(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
			return ord.Status(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("payment_status", func(fl validator.FieldLevel) bool {
			return ord.PaymentStatus(fl.Field().String()).Valid()
		})
	})
}
