package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fengcheng-bakery/cake-orders/internal/httpx"
	prod "github.com/fengcheng-bakery/cake-orders/internal/product"
)

// listProductsHandler godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        type  query     string  false  "cakeType, cakeSize or cakeFilling"
// @Success      200   {array}   product.Product
// @Failure      400   {object}  httpx.HTTPError
// @Router       /api/products [get]
func listProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := prod.Query{Type: prod.Kind(c.Query("type"))}
		if q.Type != "" && !q.Type.Valid() {
			httpx.Fail(c, http.StatusBadRequest, "invalid product type")
			return
		}
		items, err := repo.List(c.Request.Context(), q)
		if err != nil {
			httpx.Internal(c, "list products", err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// getProductHandler godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  product.Product
// @Failure      404  {object}  httpx.HTTPError
// @Router       /api/products/{id} [get]
func getProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, prod.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "product not found")
			return
		}
		if err != nil {
			httpx.Internal(c, "get product", err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary      Create a product
// @Description  Cake types and sizes need a non-negative price; fillings are stored without one
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      product.CreateProductRequest  true  "Catalog entry"
// @Success      201      {object}  product.CreateProductResponse
// @Failure      400      {object}  httpx.HTTPError
// @Router       /api/products [post]
func createProductHandler(repo prod.Repository, catalog *prod.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.CreateProductRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BindFailed(c, err)
			return
		}
		p, err := prod.NewFromRequest(in)
		if err != nil {
			if prod.IsValidation(err) {
				httpx.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Internal(c, "create product", err)
			return
		}
		p.ID = uuid.NewString()
		if err := repo.Create(c.Request.Context(), p); err != nil {
			httpx.Internal(c, "create product", err)
			return
		}
		catalog.Invalidate(c.Request.Context())
		c.JSON(http.StatusCreated, prod.CreateProductResponse{Message: "product created", ProductID: p.ID})
	}
}

// updateProductHandler godoc
// @Summary      Update a product
// @Description  Partial update; omitted fields keep their value
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Product ID"
// @Param        product  body      product.UpdateProductRequest  true  "Changed fields"
// @Success      200      {object}  httpx.MessageResponse
// @Failure      400      {object}  httpx.HTTPError
// @Failure      404      {object}  httpx.HTTPError
// @Router       /api/products/{id} [put]
func updateProductHandler(repo prod.Repository, catalog *prod.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.UpdateProductRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BindFailed(c, err)
			return
		}
		cur, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, prod.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "product not found")
			return
		}
		if err != nil {
			httpx.Internal(c, "get product", err)
			return
		}
		next, err := prod.ApplyUpdate(*cur, in)
		if err != nil {
			if prod.IsValidation(err) {
				httpx.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Internal(c, "update product", err)
			return
		}
		if err := repo.Update(c.Request.Context(), &next); err != nil {
			if errors.Is(err, prod.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "product not found")
				return
			}
			httpx.Internal(c, "update product", err)
			return
		}
		catalog.Invalidate(c.Request.Context())
		c.JSON(http.StatusOK, httpx.MessageResponse{Message: "product updated"})
	}
}

// deleteProductHandler godoc
// @Summary      Delete a product
// @Description  Orders keep their own snapshot of the product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  httpx.MessageResponse
// @Failure      404  {object}  httpx.HTTPError
// @Router       /api/products/{id} [delete]
func deleteProductHandler(repo prod.Repository, catalog *prod.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Internal(c, "delete product", err)
			return
		}
		if !ok {
			httpx.Fail(c, http.StatusNotFound, "product not found")
			return
		}
		catalog.Invalidate(c.Request.Context())
		c.JSON(http.StatusOK, httpx.MessageResponse{Message: "product deleted"})
	}
}

// catalogHandler godoc
// @Summary      Catalog grouped by kind
// @Tags         products
// @Produce      json
// @Success      200  {object}  product.Snapshot
// @Router       /api/catalog [get]
func catalogHandler(catalog *prod.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := catalog.Snapshot(c.Request.Context())
		if err != nil {
			httpx.Internal(c, "load catalog", err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}
