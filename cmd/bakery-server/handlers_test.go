package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fengcheng-bakery/cake-orders/internal/notify"
	ord "github.com/fengcheng-bakery/cake-orders/internal/order"
	prod "github.com/fengcheng-bakery/cake-orders/internal/product"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

//
// ---------- STUBS & FAKES ----------
//

// stubOrders implements ord.Repository in memory.
type stubOrders struct {
	mu            sync.Mutex
	items         map[string]ord.Order
	statusUpdates int
}

func newStubOrders(orders ...ord.Order) *stubOrders {
	s := &stubOrders{items: map[string]ord.Order{}}
	for _, o := range orders {
		s.items[o.ID] = o
	}
	return s
}

func (s *stubOrders) Create(_ context.Context, o *ord.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.UpdatedAt = o.CreatedAt
	s.items[o.ID] = *o
	return nil
}

func (s *stubOrders) GetByID(_ context.Context, id string) (*ord.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.items[id]
	if !ok {
		return nil, ord.ErrNotFound
	}
	return &o, nil
}

func (s *stubOrders) List(_ context.Context) ([]ord.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ord.Order, 0, len(s.items))
	for _, o := range s.items {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *stubOrders) Update(_ context.Context, o *ord.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[o.ID]; !ok {
		return ord.ErrNotFound
	}
	o.UpdatedAt = time.Now().UTC()
	s.items[o.ID] = *o
	return nil
}

func (s *stubOrders) UpdateStatus(_ context.Context, id string, status ord.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.items[id]
	if !ok {
		return ord.ErrNotFound
	}
	o.OrderStatus = status
	s.items[id] = o
	s.statusUpdates++
	return nil
}

func (s *stubOrders) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// stubProducts implements prod.Repository in memory.
type stubProducts struct {
	items map[string]prod.Product
}

func newStubProducts(products ...prod.Product) *stubProducts {
	s := &stubProducts{items: map[string]prod.Product{}}
	for _, p := range products {
		s.items[p.ID] = p
	}
	return s
}

func (s *stubProducts) Create(_ context.Context, p *prod.Product) error {
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	s.items[p.ID] = *p
	return nil
}

func (s *stubProducts) GetByID(_ context.Context, id string) (*prod.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, prod.ErrNotFound
	}
	return &p, nil
}

func (s *stubProducts) List(_ context.Context, q prod.Query) ([]prod.Product, error) {
	out := []prod.Product{}
	for _, p := range s.items {
		if q.Type != "" && p.Type != q.Type {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubProducts) Update(_ context.Context, p *prod.Product) error {
	if _, ok := s.items[p.ID]; !ok {
		return prod.ErrNotFound
	}
	s.items[p.ID] = *p
	return nil
}

func (s *stubProducts) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// fakePublisher records every status change.
type fakePublisher struct {
	events []notify.StatusChange
}

func (f *fakePublisher) PublishStatusChange(_ context.Context, msg notify.StatusChange) error {
	f.events = append(f.events, msg)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

var taipei = time.FixedZone("UTC+8", 8*60*60)

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func sampleCatalog() *stubProducts {
	return newStubProducts(
		prod.Product{ID: "t-choc", Type: prod.KindCakeType, Name: "Chocolate", Price: money(500)},
		prod.Product{ID: "s-6in", Type: prod.KindCakeSize, Name: "6-inch", Price: money(200)},
		prod.Product{ID: "f-none", Type: prod.KindCakeFilling, Name: "None"},
	)
}

type testEnv struct {
	router   *gin.Engine
	orders   *stubOrders
	products *stubProducts
	pub      *fakePublisher
}

func newTestEnv(orders *stubOrders, products *stubProducts) testEnv {
	if orders == nil {
		orders = newStubOrders()
	}
	if products == nil {
		products = sampleCatalog()
	}
	pub := &fakePublisher{}
	r := newRouter(server{
		orders:    orders,
		products:  products,
		catalog:   prod.NewLoader(products, nil),
		publisher: pub,
		loc:       taipei,
		shop:      "Test Bakery",
		now:       func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, taipei) },
	})
	return testEnv{router: r, orders: orders, products: products, pub: pub}
}

func (e testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func pickupOrder(id string, status ord.Status, at time.Time) ord.Order {
	return ord.Order{
		ID:             id,
		DisplayID:      ord.DisplayIDFor(id),
		CustomerName:   "Lin",
		CustomerPhone:  "0900000000",
		TotalAmount:    decimal.NewFromInt(700),
		PaymentStatus:  ord.PaymentUnpaid,
		PickupDateTime: &ord.Instant{Time: at},
		OrderStatus:    status,
		CreatedAt:      at.Add(-48 * time.Hour),
		Items: []ord.LineItem{{
			CakeType:    ord.ProductSnapshot{ID: "t-choc", Name: "Chocolate", Price: decimal.NewFromInt(500)},
			CakeSize:    ord.ProductSnapshot{ID: "s-6in", Name: "6-inch", Price: decimal.NewFromInt(200)},
			CakeFilling: ord.FillingSnapshot{ID: "f-none", Name: "None"},
			Quantity:    1,
		}},
	}
}

const createBody = `{
  "customerName": "Wang",
  "customerGender": "Ms.",
  "customerPhone": "0912345678",
  "items": [{
    "cakeType": {"id": "t-choc", "name": "Chocolate", "price": 500},
    "cakeSize": {"id": "s-6in", "name": "6-inch", "price": 200},
    "cakeFilling": {"id": "f-none", "name": "None"},
    "quantity": 2
  }],
  "totalAmount": 1400,
  "needsDelivery": false,
  "deliveryAddress": "should be dropped",
  "pickupDateTime": "2025-06-01T10:00"
}`

//
// ---------- ORDERS ----------
//

func TestCreateOrder_HappyPath(t *testing.T) {
	env := newTestEnv(nil, nil)

	w := env.do(http.MethodPost, "/api/orders", createBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp ord.CreateOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.DisplayID) != 8 || resp.DisplayID != strings.ToUpper(resp.OrderID[:8]) {
		t.Fatalf("displayId=%q orderId=%q", resp.DisplayID, resp.OrderID)
	}

	stored, ok := env.orders.items[resp.OrderID]
	if !ok {
		t.Fatalf("order not persisted")
	}
	if !stored.TotalAmount.Equal(decimal.NewFromInt(1400)) {
		t.Fatalf("total=%s, want 1400", stored.TotalAmount)
	}
	if !ord.ItemsTotal(stored.Items).Equal(stored.TotalAmount) {
		t.Fatalf("items re-price to %s", ord.ItemsTotal(stored.Items))
	}
	if stored.OrderStatus != ord.StatusPending || stored.PaymentStatus != ord.PaymentUnpaid {
		t.Fatalf("defaults not applied: status=%s payment=%s", stored.OrderStatus, stored.PaymentStatus)
	}
	if stored.DeliveryAddress != nil || stored.DeliveryTime != nil {
		t.Fatalf("delivery side should be cleared for pickup orders")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("createdAt not stamped")
	}
	if stored.PickupDateTime == nil || !stored.PickupDateTime.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, taipei)) {
		t.Fatalf("pickup=%v, want 10:00 bakery time", stored.PickupDateTime)
	}

	w = env.do(http.MethodGet, "/api/orders/"+resp.OrderID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"totalAmount":1400`) {
		t.Fatalf("total should be a bare number on the wire: %s", body)
	}
	if !regexp.MustCompile(`"displayId":"[0-9A-F]{8}"`).MatchString(body) {
		t.Fatalf("displayId should be 8 uppercase hex chars: %s", body)
	}
	if !strings.Contains(body, `"pickupDateTime":"2025-06-01T10:00:00+08:00"`) {
		t.Fatalf("pickup time should keep the bakery offset: %s", body)
	}
}

func TestCreateOrder_RejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"negative total":   strings.Replace(createBody, `"totalAmount": 1400`, `"totalAmount": -1`, 1),
		"missing total":    strings.Replace(createBody, `"totalAmount": 1400,`, ``, 1),
		"no pickup time":   strings.Replace(createBody, `"pickupDateTime": "2025-06-01T10:00"`, `"notes": ""`, 1),
		"unknown status":   strings.Replace(createBody, `"needsDelivery": false`, `"needsDelivery": false, "orderStatus": "baking"`, 1),
		"zero quantity":    strings.Replace(createBody, `"quantity": 2`, `"quantity": 0`, 1),
		"malformed json":   `{"customerName": `,
		"no customer name": strings.Replace(createBody, `"Wang"`, `""`, 1),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(nil, nil)
			w := env.do(http.MethodPost, "/api/orders", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			if len(env.orders.items) != 0 {
				t.Fatalf("nothing should be stored")
			}
		})
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	env := newTestEnv(nil, nil)
	w := env.do(http.MethodGet, "/api/orders/"+uuid.NewString(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (expected 404)", w.Code, w.Body.String())
	}
}

func TestListOrders_NewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, taipei)
	older := pickupOrder("older", ord.StatusPending, base)
	newer := pickupOrder("newer", ord.StatusPending, base.Add(time.Hour))
	env := newTestEnv(newStubOrders(older, newer), nil)

	w := env.do(http.MethodGet, "/api/orders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []ord.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].ID != "newer" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestUpdateOrder_StatusChangePublishes(t *testing.T) {
	o := pickupOrder("o1", ord.StatusPending, time.Date(2025, 6, 2, 10, 0, 0, 0, taipei))
	env := newTestEnv(newStubOrders(o), nil)

	w := env.do(http.MethodPut, "/api/orders/o1", `{"orderStatus":"in_production","paymentStatus":"deposit"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := env.orders.items["o1"]
	if got.OrderStatus != ord.StatusInProduction || got.PaymentStatus != ord.PaymentDeposit {
		t.Fatalf("not updated: %+v", got)
	}
	if got.CustomerName != "Lin" {
		t.Fatalf("omitted fields must be kept, name=%q", got.CustomerName)
	}
	if len(env.pub.events) != 1 || env.pub.events[0].OldStatus != "pending" || env.pub.events[0].NewStatus != "in_production" {
		t.Fatalf("events=%+v", env.pub.events)
	}

	w = env.do(http.MethodPut, "/api/orders/o1", `{"notes":"less sugar"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if len(env.pub.events) != 1 {
		t.Fatalf("no event expected without a status change, got %d", len(env.pub.events))
	}
}

func TestUpdateOrder_SwitchToDeliveryClearsPickup(t *testing.T) {
	o := pickupOrder("o1", ord.StatusPending, time.Date(2025, 6, 2, 10, 0, 0, 0, taipei))
	env := newTestEnv(newStubOrders(o), nil)

	w := env.do(http.MethodPut, "/api/orders/o1",
		`{"needsDelivery":true,"deliveryAddress":"No. 1 Main St","deliveryTime":"2025-06-02T15:00"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := env.orders.items["o1"]
	if got.PickupDateTime != nil {
		t.Fatalf("pickup time should be cleared")
	}
	if got.DeliveryAddress == nil || *got.DeliveryAddress != "No. 1 Main St" || got.DeliveryTime == nil {
		t.Fatalf("delivery not stored: %+v", got)
	}
}

func TestUpdateOrder_DeliveryToggleWithoutDetails(t *testing.T) {
	at := time.Date(2025, 6, 1, 15, 0, 0, 0, taipei)
	o := pickupOrder("o1", ord.StatusPending, at)
	env := newTestEnv(newStubOrders(o), nil)

	w := env.do(http.MethodPut, "/api/orders/o1", `{"needsDelivery":true}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := env.orders.items["o1"]
	if got.NeedsDelivery || got.DeliveryAddress != nil || got.DeliveryTime != nil {
		t.Fatalf("rejected toggle must not persist: %+v", got)
	}
	if got.PickupDateTime == nil || !got.PickupDateTime.Equal(at) {
		t.Fatalf("pickup time lost: %v", got.PickupDateTime)
	}

	w = env.do(http.MethodGet, "/api/dashboard", "")
	if !strings.Contains(w.Body.String(), `"todayPending":1`) {
		t.Fatalf("order should still be on the dashboard: %s", w.Body.String())
	}

	if w := env.do(http.MethodPut, "/api/orders/o1", `{"pickupDateTime":null,"notes":"x"}`); w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateOrder_Rejects(t *testing.T) {
	o := pickupOrder("o1", ord.StatusPending, time.Date(2025, 6, 2, 10, 0, 0, 0, taipei))
	env := newTestEnv(newStubOrders(o), nil)

	for _, body := range []string{
		`{"totalAmount":-5}`,
		`{"orderStatus":"baking"}`,
		`{"paymentStatus":"half"}`,
	} {
		w := env.do(http.MethodPut, "/api/orders/o1", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status=%d resp=%s", body, w.Code, w.Body.String())
		}
	}
	if w := env.do(http.MethodPut, "/api/orders/missing", `{"notes":"x"}`); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404)", w.Code)
	}
	if env.orders.items["o1"].OrderStatus != ord.StatusPending {
		t.Fatalf("rejected updates must not persist")
	}
}

func TestDeleteOrder(t *testing.T) {
	o := pickupOrder("o1", ord.StatusPending, time.Date(2025, 6, 2, 10, 0, 0, 0, taipei))
	env := newTestEnv(newStubOrders(o), nil)

	if w := env.do(http.MethodDelete, "/api/orders/o1", ""); w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w := env.do(http.MethodDelete, "/api/orders/o1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404 on second delete)", w.Code)
	}
}

func TestCompleteOrder_Idempotent(t *testing.T) {
	o := pickupOrder("o1", ord.StatusReady, time.Date(2025, 6, 1, 10, 0, 0, 0, taipei))
	env := newTestEnv(newStubOrders(o), nil)

	for i := 0; i < 2; i++ {
		w := env.do(http.MethodPost, "/api/orders/o1/complete", "")
		if w.Code != http.StatusOK {
			t.Fatalf("call %d: status=%d body=%s", i+1, w.Code, w.Body.String())
		}
	}
	if got := env.orders.items["o1"].OrderStatus; got != ord.StatusDelivered {
		t.Fatalf("status=%s, want delivered", got)
	}
	if env.orders.statusUpdates != 1 || len(env.pub.events) != 1 {
		t.Fatalf("second complete must be a no-op: writes=%d events=%d", env.orders.statusUpdates, len(env.pub.events))
	}
	if w := env.do(http.MethodPost, "/api/orders/nope/complete", ""); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404)", w.Code)
	}
}

func TestQuoteOrder(t *testing.T) {
	env := newTestEnv(nil, nil)

	w := env.do(http.MethodPost, "/api/orders/quote", `{"items":[
		{"cakeTypeId":"t-choc","cakeSizeId":"s-6in","cakeFillingId":"f-none","quantity":"2"},
		{"cakeTypeId":"t-choc","cakeSizeId":"","cakeFillingId":"","quantity":1}
	]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var q ord.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !q.TotalAmount.Equal(decimal.NewFromInt(1400)) || len(q.Items) != 2 {
		t.Fatalf("quote=%+v", q)
	}

	w = env.do(http.MethodPost, "/api/orders/quote", `{"items":[{"cakeTypeId":"gone","quantity":1}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (expected 400 for unknown product)", w.Code)
	}
}

func TestOrderSlip(t *testing.T) {
	o := pickupOrder("a1b2c3d4-0000-0000-0000-000000000000", ord.StatusPending, time.Date(2025, 6, 1, 10, 0, 0, 0, taipei))
	env := newTestEnv(newStubOrders(o), nil)

	w := env.do(http.MethodGet, "/api/orders/"+o.ID+"/slip", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "A1B2C3D4") || !strings.Contains(body, "data:image/png;base64,") {
		t.Fatalf("slip missing display id or QR: %s", body)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("content-type=%s", w.Header().Get("Content-Type"))
	}
}

//
// ---------- DASHBOARD ----------
//

func TestDashboard_Buckets(t *testing.T) {
	orders := newStubOrders(
		pickupOrder("tomorrow", ord.StatusPending, time.Date(2025, 6, 2, 10, 0, 0, 0, taipei)),
		pickupOrder("today", ord.StatusInProduction, time.Date(2025, 6, 1, 15, 0, 0, 0, taipei)),
		pickupOrder("late", ord.StatusReady, time.Date(2025, 5, 31, 10, 0, 0, 0, taipei)),
		pickupOrder("done", ord.StatusDelivered, time.Date(2025, 6, 1, 11, 0, 0, 0, taipei)),
	)
	env := newTestEnv(orders, nil)

	w := env.do(http.MethodGet, "/api/dashboard?now=2025-06-01T09:00:00%2B08:00", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var d ord.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.TodayPending != 1 || d.TomorrowDue != 1 || d.Overdue != 1 {
		t.Fatalf("counts today=%d tomorrow=%d overdue=%d", d.TodayPending, d.TomorrowDue, d.Overdue)
	}
	if len(d.Recent) != 2 || d.Recent[0].ID != "today" || d.Recent[1].ID != "tomorrow" {
		t.Fatalf("recent=%+v", d.Recent)
	}
	if len(d.AllPending) != 3 || d.AllPending[0].ID != "late" {
		t.Fatalf("allPending=%+v", d.AllPending)
	}
}

func TestDashboard_DefaultsToServerClock(t *testing.T) {
	orders := newStubOrders(pickupOrder("tomorrow", ord.StatusPending, time.Date(2025, 6, 2, 10, 0, 0, 0, taipei)))
	env := newTestEnv(orders, nil)

	w := env.do(http.MethodGet, "/api/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"tomorrowDue":1`) {
		t.Fatalf("body=%s", w.Body.String())
	}

	if w := env.do(http.MethodGet, "/api/dashboard?now=yesterday", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (expected 400 for bad now)", w.Code)
	}
}

//
// ---------- PAGES ----------
//

func TestPagesAndHealth(t *testing.T) {
	env := newTestEnv(nil, nil)
	for _, path := range []string{"/", "/manage.html", "/dashboard.html", "/products.html", "/app.css", "/healthz"} {
		w := env.do(http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", path, w.Code)
		}
	}
}

func TestPages_EscapeCustomerFields(t *testing.T) {
	env := newTestEnv(nil, nil)
	want := map[string][]string{
		"/manage.html":    {"${esc(o.customerName)}", "${esc(o.customerPhone)}", "${esc(o.customerGender)}"},
		"/dashboard.html": {"${esc(r.customerName)}", "${esc(r.displayId)}"},
		"/products.html":  {"${esc(p.name)}"},
		"/":               {"${esc(p.name)}"},
	}
	raw := regexp.MustCompile(`>\$\{(o|r|p)\.(customerName|customerPhone|customerGender|name)\}`)
	for path, exprs := range want {
		body := env.do(http.MethodGet, path, "").Body.String()
		if !strings.Contains(body, "const esc = ") {
			t.Fatalf("%s: no escape helper", path)
		}
		for _, e := range exprs {
			if !strings.Contains(body, e) {
				t.Fatalf("%s: missing %s", path, e)
			}
		}
		if m := raw.FindString(body); m != "" {
			t.Fatalf("%s: unescaped %s", path, m)
		}
	}
}
