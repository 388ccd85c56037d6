package main

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fengcheng-bakery/cake-orders/docs"
	"github.com/fengcheng-bakery/cake-orders/internal/httpx"
	"github.com/fengcheng-bakery/cake-orders/internal/notify"
	ord "github.com/fengcheng-bakery/cake-orders/internal/order"
	prod "github.com/fengcheng-bakery/cake-orders/internal/product"
	"github.com/fengcheng-bakery/cake-orders/web"
)

type server struct {
	orders    ord.Repository
	products  prod.Repository
	catalog   *prod.Loader
	publisher notify.Publisher
	loc       *time.Location
	shop      string
	now       func() time.Time
	pages     fs.FS
}

func newRouter(s server) *gin.Engine {
	registerValidators()
	if s.now == nil {
		s.now = time.Now
	}
	if s.publisher == nil {
		s.publisher = notify.Noop{}
	}
	if s.loc == nil {
		s.loc = time.Local
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/orders", listOrdersHandler(s.orders))
	api.POST("/orders", createOrderHandler(s.orders, s.loc, s.now))
	api.POST("/orders/quote", quoteOrderHandler(s.catalog))
	api.GET("/orders/:id", getOrderHandler(s.orders))
	api.PUT("/orders/:id", updateOrderHandler(s.orders, s.publisher, s.loc))
	api.DELETE("/orders/:id", deleteOrderHandler(s.orders))
	api.POST("/orders/:id/complete", completeOrderHandler(s.orders, s.publisher))
	api.GET("/orders/:id/slip", orderSlipHandler(s.orders, s.shop, s.loc))
	api.GET("/dashboard", dashboardHandler(s.orders, s.loc, s.now))

	api.GET("/products", listProductsHandler(s.products))
	api.POST("/products", createProductHandler(s.products, s.catalog))
	api.GET("/products/:id", getProductHandler(s.products))
	api.PUT("/products/:id", updateProductHandler(s.products, s.catalog))
	api.DELETE("/products/:id", deleteProductHandler(s.products, s.catalog))
	api.GET("/catalog", catalogHandler(s.catalog))

	if s.pages == nil {
		s.pages = web.Pages()
	}
	r.GET("/", pageHandler(s.pages, "index.html", "text/html; charset=utf-8"))
	for _, name := range []string{"manage.html", "dashboard.html", "products.html"} {
		r.GET("/"+name, pageHandler(s.pages, name, "text/html; charset=utf-8"))
	}
	r.GET("/app.css", pageHandler(s.pages, "app.css", "text/css; charset=utf-8"))
	return r
}

// pageHandler serves one embedded file as is.
func pageHandler(pages fs.FS, name, contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := fs.ReadFile(pages, name)
		if err != nil {
			httpx.Fail(c, http.StatusNotFound, "page not found")
			return
		}
		c.Data(http.StatusOK, contentType, b)
	}
}
