package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
)

func orderPayload() map[string]any {
	return map[string]any{
		"delivery_date":    "2025-01-01",
		"delivery_time":    "10:00-12:00",
		"delivery_address": "ул. Ленина, 1",
		"total_price":      1500,
		"items": []map[string]any{
			{"product_id": 1, "product_name": "A", "quantity": 2, "price": 1500},
		},
	}
}

func TestOrderRoundTrip(t *testing.T) {
	app, _, _ := newTestApp(t)

	// the cart has content before checkout
	resp := doJSON(t, app, "POST", "/api/cart/", map[string]any{"product_id": 1, "quantity": 2})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("cart add: want 201, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/orders/", orderPayload())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	var o domain.Order
	readJSON(t, resp, &o)
	if len(o.Items) != 1 || o.Items[0].Quantity != 2 {
		t.Fatalf("bad items: %+v", o.Items)
	}
	if o.TotalPrice != 1500 {
		t.Fatalf("want total_price 1500, got %d", o.TotalPrice)
	}
	if o.Status != domain.StatusPending {
		t.Fatalf("want default status pending, got %q", o.Status)
	}

	// checkout emptied the cart
	resp = doJSON(t, app, "GET", "/api/cart/", nil)
	var cart []domain.CartItem
	readJSON(t, resp, &cart)
	if len(cart) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d items", len(cart))
	}

	// the fresh order leads the listing
	resp = doJSON(t, app, "GET", "/api/orders/", nil)
	var orders []domain.Order
	readJSON(t, resp, &orders)
	if len(orders) == 0 || orders[0].ID != o.ID {
		t.Fatalf("new order should come first: %+v", orders)
	}
}

func TestOrderCreateBadDate(t *testing.T) {
	app, _, _ := newTestApp(t)

	p := orderPayload()
	p["delivery_date"] = "01/01/2025"
	resp := doJSON(t, app, "POST", "/api/orders/", p)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestOrderPatch(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/orders/", orderPayload())
	var o domain.Order
	readJSON(t, resp, &o)

	// allowed field
	resp = doJSON(t, app, "PATCH", fmt.Sprintf("/api/orders/%d", o.ID), map[string]any{"status": "onWay"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var upd domain.Order
	readJSON(t, resp, &upd)
	if upd.Status != domain.StatusOnWay {
		t.Fatalf("want onWay, got %q", upd.Status)
	}
	if len(upd.Items) != 1 {
		t.Fatal("patched order must carry its items")
	}

	// invalid date leaves stored fields unchanged
	resp = doJSON(t, app, "PATCH", fmt.Sprintf("/api/orders/%d", o.ID), map[string]any{"delivery_date": "01/01/2025"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/api/orders/", nil)
	var orders []domain.Order
	readJSON(t, resp, &orders)
	if orders[0].DeliveryDate != "2025-01-01" {
		t.Fatalf("stored date changed after rejected patch: %+v", orders[0])
	}

	// unknown keys are rejected, not ignored
	resp = doJSON(t, app, "PATCH", fmt.Sprintf("/api/orders/%d", o.ID), map[string]any{"total_price": 1})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for unknown key, got %d", resp.StatusCode)
	}

	// missing order
	resp = doJSON(t, app, "PATCH", "/api/orders/999", map[string]any{"status": "onWay"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestOrderCancel(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doJSON(t, app, "DELETE", "/api/orders/999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for missing order, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/orders/", orderPayload())
	var o domain.Order
	readJSON(t, resp, &o)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/orders/%d", o.ID), nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("want 204, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/api/orders/", nil)
	var orders []domain.Order
	readJSON(t, resp, &orders)
	if orders[0].Status != domain.StatusCancelled {
		t.Fatalf("want cancelled, got %q", orders[0].Status)
	}
	if len(orders[0].Items) != 1 {
		t.Fatal("cancel must not delete the order items")
	}
}
