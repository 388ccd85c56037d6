package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fengcheng-bakery/cake-orders/internal/httpx"
	"github.com/fengcheng-bakery/cake-orders/internal/notify"
	ord "github.com/fengcheng-bakery/cake-orders/internal/order"
	prod "github.com/fengcheng-bakery/cake-orders/internal/product"
)

// listOrdersHandler godoc
// @Summary      List orders
// @Description  All orders, newest first
// @Tags         orders
// @Produce      json
// @Success      200  {array}   order.Order
// @Failure      500  {object}  httpx.HTTPError
// @Router       /api/orders [get]
func listOrdersHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Internal(c, "list orders", err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// getOrderHandler godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  order.Order
// @Failure      404  {object}  httpx.HTTPError
// @Router       /api/orders/{id} [get]
func getOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := loadOrder(c, repo)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// createOrderHandler godoc
// @Summary      Create an order
// @Description  Stores the order with its item snapshots. The total is taken as posted.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      order.CreateOrderRequest  true  "Order form"
// @Success      201    {object}  order.CreateOrderResponse
// @Failure      400    {object}  httpx.HTTPError
// @Failure      500    {object}  httpx.HTTPError
// @Router       /api/orders [post]
func createOrderHandler(repo ord.Repository, loc *time.Location, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ord.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BindFailed(c, err)
			return
		}
		o, err := ord.NewFromRequest(in, loc)
		if err != nil {
			if ord.IsValidation(err) {
				httpx.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Internal(c, "create order", err)
			return
		}

		o.ID = uuid.NewString()
		o.DisplayID = ord.DisplayIDFor(o.ID)
		o.CreatedAt = now().UTC()
		if err := repo.Create(c.Request.Context(), o); err != nil {
			httpx.Internal(c, "create order", err)
			return
		}
		c.JSON(http.StatusCreated, ord.CreateOrderResponse{
			Message:   "order created",
			OrderID:   o.ID,
			DisplayID: o.DisplayID,
		})
	}
}

// updateOrderHandler godoc
// @Summary      Update an order
// @Description  Partial update; omitted fields keep their value. Switching fulfillment mode needs the new side's details.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id     path      string                    true  "Order ID"
// @Param        order  body      order.UpdateOrderRequest  true  "Changed fields"
// @Success      200    {object}  httpx.MessageResponse
// @Failure      400    {object}  httpx.HTTPError
// @Failure      404    {object}  httpx.HTTPError
// @Router       /api/orders/{id} [put]
func updateOrderHandler(repo ord.Repository, pub notify.Publisher, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ord.UpdateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BindFailed(c, err)
			return
		}
		cur, ok := loadOrder(c, repo)
		if !ok {
			return
		}
		next, prev, err := ord.ApplyUpdate(*cur, in, loc)
		if err != nil {
			if ord.IsValidation(err) {
				httpx.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Internal(c, "update order", err)
			return
		}
		if err := repo.Update(c.Request.Context(), &next); err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "order not found")
				return
			}
			httpx.Internal(c, "update order", err)
			return
		}
		if prev != next.OrderStatus {
			publishStatus(c.Request.Context(), pub, next, prev)
		}
		c.JSON(http.StatusOK, httpx.MessageResponse{Message: "order updated"})
	}
}

// deleteOrderHandler godoc
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  httpx.MessageResponse
// @Failure      404  {object}  httpx.HTTPError
// @Router       /api/orders/{id} [delete]
func deleteOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Internal(c, "delete order", err)
			return
		}
		if !ok {
			httpx.Fail(c, http.StatusNotFound, "order not found")
			return
		}
		c.JSON(http.StatusOK, httpx.MessageResponse{Message: "order deleted"})
	}
}

// completeOrderHandler godoc
// @Summary      Mark an order delivered or picked up
// @Description  Idempotent; completing a completed order changes nothing
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  httpx.MessageResponse
// @Failure      404  {object}  httpx.HTTPError
// @Router       /api/orders/{id}/complete [post]
func completeOrderHandler(repo ord.Repository, pub notify.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := loadOrder(c, repo)
		if !ok {
			return
		}
		prev := o.OrderStatus
		if !o.MarkComplete() {
			c.JSON(http.StatusOK, httpx.MessageResponse{Message: "order already completed"})
			return
		}
		if err := repo.UpdateStatus(c.Request.Context(), o.ID, o.OrderStatus); err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "order not found")
				return
			}
			httpx.Internal(c, "complete order", err)
			return
		}
		publishStatus(c.Request.Context(), pub, *o, prev)
		c.JSON(http.StatusOK, httpx.MessageResponse{Message: "order completed"})
	}
}

// quoteOrderHandler godoc
// @Summary      Price order lines
// @Description  Resolves catalog ids against the current catalog and returns item snapshots with the total
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        lines  body      order.QuoteRequest  true  "Form rows"
// @Success      200    {object}  order.Quote
// @Failure      400    {object}  httpx.HTTPError
// @Router       /api/orders/quote [post]
func quoteOrderHandler(catalog *prod.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ord.QuoteRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BindFailed(c, err)
			return
		}
		snap, err := catalog.Snapshot(c.Request.Context())
		if err != nil {
			httpx.Internal(c, "load catalog", err)
			return
		}
		q, err := ord.BuildQuote(snap, in.Items)
		if err != nil {
			if ord.IsValidation(err) {
				httpx.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Internal(c, "quote order", err)
			return
		}
		c.JSON(http.StatusOK, q)
	}
}

// orderSlipHandler godoc
// @Summary      Printable order slip
// @Tags         orders
// @Produce      html
// @Param        id   path  string  true  "Order ID"
// @Success      200  {string}  string  "HTML slip"
// @Failure      404  {object}  httpx.HTTPError
// @Router       /api/orders/{id}/slip [get]
func orderSlipHandler(repo ord.Repository, shop string, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := loadOrder(c, repo)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := ord.RenderSlip(&buf, shop, *o, loc); err != nil {
			httpx.Internal(c, "render slip", err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

// dashboardHandler godoc
// @Summary      Order triage
// @Description  Counts and lists open orders due today and tomorrow; overdue orders are counted only
// @Tags         dashboard
// @Produce      json
// @Param        now  query     string  false  "Reference instant (RFC3339), defaults to server time"
// @Success      200  {object}  order.Dashboard
// @Failure      400  {object}  httpx.HTTPError
// @Router       /api/dashboard [get]
func dashboardHandler(repo ord.Repository, loc *time.Location, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		at := now()
		if raw := c.Query("now"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				httpx.Fail(c, http.StatusBadRequest, "now must be RFC3339")
				return
			}
			at = t
		}
		orders, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Internal(c, "list orders", err)
			return
		}
		c.JSON(http.StatusOK, ord.Triage(orders, at, loc))
	}
}

func loadOrder(c *gin.Context, repo ord.Repository) (*ord.Order, bool) {
	o, err := repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ord.ErrNotFound) {
		httpx.Fail(c, http.StatusNotFound, "order not found")
		return nil, false
	}
	if err != nil {
		httpx.Internal(c, "get order", err)
		return nil, false
	}
	return o, true
}

// publishStatus never fails the request; the broker is best effort.
func publishStatus(ctx context.Context, pub notify.Publisher, o ord.Order, prev ord.Status) {
	err := pub.PublishStatusChange(ctx, notify.StatusChange{
		OrderID:   o.ID,
		DisplayID: o.Label(),
		OldStatus: string(prev),
		NewStatus: string(o.OrderStatus),
		ChangedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[notify] order %s status %s -> %s: %v", o.Label(), prev, o.OrderStatus, err)
	}
}
