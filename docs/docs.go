// Package docs is generated by swaggo/swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Catalog grouped by kind",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/product.Snapshot"}}
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "description": "Counts and lists open orders due today and tomorrow; overdue orders are counted only",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Order triage",
                "parameters": [
                    {"type": "string", "description": "Reference instant (RFC3339), defaults to server time", "name": "now", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Dashboard"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/orders": {
            "get": {
                "description": "All orders, newest first",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "post": {
                "description": "Stores the order with its item snapshots. The total is taken as posted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create an order",
                "parameters": [
                    {"description": "Order form", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/order.CreateOrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/orders/quote": {
            "post": {
                "description": "Resolves catalog ids against the current catalog and returns item snapshots with the total",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Price order lines",
                "parameters": [
                    {"description": "Form rows", "name": "lines", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.QuoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Quote"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "put": {
                "description": "Partial update; omitted fields keep their value",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Update an order",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"description": "Changed fields", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.UpdateOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Delete an order",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/orders/{id}/complete": {
            "post": {
                "description": "Idempotent; completing a completed order changes nothing",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Mark an order delivered or picked up",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/orders/{id}/slip": {
            "get": {
                "produces": ["text/html"],
                "tags": ["orders"],
                "summary": "Printable order slip",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "HTML slip", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "parameters": [{"type": "string", "description": "cakeType, cakeSize or cakeFilling", "name": "type", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "post": {
                "description": "Cake types and sizes need a non-negative price; fillings are stored without one",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create a product",
                "parameters": [
                    {"description": "Catalog entry", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/product.CreateProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/product.CreateProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a product",
                "parameters": [{"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/product.Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "put": {
                "description": "Partial update; omitted fields keep their value",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Changed fields", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/product.UpdateProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "delete": {
                "description": "Orders keep their own snapshot of the product",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [{"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.HTTPError": {
            "type": "object",
            "properties": {"error": {"description": "Error message", "type": "string", "example": "not found"}}
        },
        "httpx.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "order.ProductSnapshot": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "price": {"type": "number"}}
        },
        "order.FillingSnapshot": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}}
        },
        "order.LineItem": {
            "type": "object",
            "properties": {
                "cakeType": {"$ref": "#/definitions/order.ProductSnapshot"},
                "cakeSize": {"$ref": "#/definitions/order.ProductSnapshot"},
                "cakeFilling": {"$ref": "#/definitions/order.FillingSnapshot"},
                "quantity": {"type": "integer"}
            }
        },
        "order.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "displayId": {"type": "string"},
                "customerName": {"type": "string"},
                "customerGender": {"type": "string"},
                "customerPhone": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.LineItem"}},
                "totalAmount": {"type": "number"},
                "paymentStatus": {"type": "string", "enum": ["unpaid", "deposit", "paid"]},
                "needsDelivery": {"type": "boolean"},
                "deliveryAddress": {"type": "string"},
                "deliveryTime": {"type": "string"},
                "pickupDateTime": {"type": "string"},
                "notes": {"type": "string"},
                "orderStatus": {"type": "string", "enum": ["pending", "in_production", "ready", "delivered", "cancelled"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "order.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "customerName": {"type": "string", "example": "Wang"},
                "customerGender": {"type": "string", "example": "Ms."},
                "customerPhone": {"type": "string", "example": "0912345678"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.LineItem"}},
                "totalAmount": {"type": "number", "example": 1400},
                "paymentStatus": {"type": "string"},
                "needsDelivery": {"type": "boolean"},
                "deliveryAddress": {"type": "string"},
                "deliveryTime": {"type": "string"},
                "pickupDateTime": {"type": "string", "example": "2025-06-01T10:00"},
                "notes": {"type": "string"},
                "orderStatus": {"type": "string"}
            }
        },
        "order.UpdateOrderRequest": {
            "type": "object",
            "properties": {
                "customerName": {"type": "string"},
                "customerGender": {"type": "string"},
                "customerPhone": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.LineItem"}},
                "totalAmount": {"type": "number"},
                "paymentStatus": {"type": "string"},
                "needsDelivery": {"type": "boolean"},
                "deliveryAddress": {"type": "string"},
                "deliveryTime": {"type": "string"},
                "pickupDateTime": {"type": "string"},
                "notes": {"type": "string"},
                "orderStatus": {"type": "string"}
            }
        },
        "order.CreateOrderResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "orderId": {"type": "string"}, "displayId": {"type": "string"}}
        },
        "order.QuoteLine": {
            "type": "object",
            "properties": {
                "cakeTypeId": {"type": "string"},
                "cakeSizeId": {"type": "string"},
                "cakeFillingId": {"type": "string"},
                "quantity": {"type": "integer", "example": 2}
            }
        },
        "order.QuoteRequest": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/order.QuoteLine"}}}
        },
        "order.Quote": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.LineItem"}},
                "totalAmount": {"type": "number"}
            }
        },
        "order.DashboardRow": {
            "type": "object",
            "allOf": [{"$ref": "#/definitions/order.Order"}],
            "properties": {"fulfillmentAt": {"type": "string"}, "canMarkComplete": {"type": "boolean"}}
        },
        "order.Dashboard": {
            "type": "object",
            "properties": {
                "todayPending": {"type": "integer"},
                "tomorrowDue": {"type": "integer"},
                "overdue": {"type": "integer"},
                "recent": {"type": "array", "items": {"$ref": "#/definitions/order.DashboardRow"}},
                "allPending": {"type": "array", "items": {"$ref": "#/definitions/order.DashboardRow"}}
            }
        },
        "product.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["cakeType", "cakeSize", "cakeFilling"]},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "product.CreateProductRequest": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {"type": "string", "example": "cakeType"},
                "name": {"type": "string", "example": "Chocolate"},
                "price": {"type": "number", "example": 500}
            }
        },
        "product.UpdateProductRequest": {
            "type": "object",
            "properties": {"type": {"type": "string"}, "name": {"type": "string"}, "price": {"type": "number"}}
        },
        "product.CreateProductResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "productId": {"type": "string"}}
        },
        "product.Snapshot": {
            "type": "object",
            "properties": {
                "cakeType": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}},
                "cakeSize": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}},
                "cakeFilling": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cake Orders API",
	Description:      "Order and catalog management for the bakery counter.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
