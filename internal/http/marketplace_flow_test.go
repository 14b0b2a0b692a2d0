package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func createClassification(t *testing.T, e *env, token, condition string) int64 {
	t.Helper()
	resp, err := e.app.Test(authedReq("POST", "/classify/", token, fiber.Map{
		"item_name": "old laptop", "condition": condition, "category": "computers",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("classify: want 200, got %d", resp.StatusCode)
	}
	var c map[string]any
	decodeBody(t, resp, &c)
	return int64(c["id"].(float64))
}

func TestMarketplaceEndToEnd(t *testing.T) {
	e := newEnv(t)
	sellerTok := registerAndLogin(t, e, "seller@x.com", "seller", "pw1")
	buyerTok := registerAndLogin(t, e, "buyer@x.com", "buyer", "pw1")
	cid := createClassification(t, e, sellerTok, "working")

	resp, err := e.app.Test(authedReq("POST", "/marketplace/", sellerTok, fiber.Map{
		"classification_id": cid,
		"title":             "ThinkPad X1",
		"brand":             "Lenovo",
		"model":             "X1 Carbon",
		"price":             100.00,
		"category_id":       2,
		"images":            []string{"front.jpg"},
		"specifications":    map[string]string{"ram": "16GB"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create item: want 200, got %d", resp.StatusCode)
	}
	var item map[string]any
	decodeBody(t, resp, &item)
	itemID := int64(item["id"].(float64))
	if item["seller_name"] != "seller" || item["status"] != "available" {
		t.Fatalf("unexpected item: %v", item)
	}

	// public listing shows it after the static catalog
	resp, err = e.app.Test(httptest.NewRequest("GET", "/marketplace/", nil))
	if err != nil {
		t.Fatal(err)
	}
	var views []map[string]any
	decodeBody(t, resp, &views)
	found := false
	for _, v := range views {
		if int64(v["id"].(float64)) == itemID {
			found = true
		}
	}
	if !found {
		t.Fatal("listed item missing from marketplace")
	}

	// purchase by the buyer; card fields are accepted but ignored
	resp, err = e.app.Test(authedReq("POST", "/marketplace/purchase", buyerTok, fiber.Map{
		"marketplace_item_id": itemID,
		"shipping_address":    "12 Oak St",
		"phone_number":        "555-0100",
		"payment_method":      "credit_card",
		"card_number":         "4111111111111111",
		"card_expiry":         "12/28",
		"card_cvv":            "123",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("purchase: want 200, got %d", resp.StatusCode)
	}
	var p map[string]any
	decodeBody(t, resp, &p)
	if p["purchase_price"].(float64) != 100.00 || p["status"] != "completed" {
		t.Fatalf("unexpected purchase: %v", p)
	}
	if int64(p["id"].(float64)) != 1 {
		t.Fatalf("unexpected purchase id: %v", p["id"])
	}

	// second buyer loses
	resp, err = e.app.Test(authedReq("POST", "/marketplace/purchase", sellerTok, fiber.Map{
		"marketplace_item_id": itemID,
		"shipping_address":    "a", "phone_number": "p", "payment_method": "cash",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusNotFound || got != "item not found or not available" {
		t.Fatalf("sold item: got %d %q", resp.StatusCode, got)
	}

	// receipt download
	resp, err = e.app.Test(authedReq("GET", "/marketplace/receipt/1", buyerTok, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("receipt: want 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("receipt content type: %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); cd != "attachment; filename=ECycle_Receipt_000001.txt" {
		t.Fatalf("receipt disposition: %q", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	text := string(body)
	for _, want := range []string{"Order ID: ECY000001", "ThinkPad X1", "Item Price:        $100.00", "Tax (8%):          $8.00", "Total Paid:        $108.00"} {
		if !strings.Contains(text, want) {
			t.Fatalf("receipt missing %q:\n%s", want, text)
		}
	}

	// only the buyer can fetch it
	resp, err = e.app.Test(authedReq("GET", "/marketplace/receipt/1", sellerTok, nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusNotFound || got != "purchase not found" {
		t.Fatalf("foreign receipt: got %d %q", resp.StatusCode, got)
	}
}

func TestPurchaseValidation(t *testing.T) {
	e := newEnv(t)
	tok := registerAndLogin(t, e, "a@x.com", "a1", "pw1")

	resp, err := e.app.Test(authedReq("POST", "/marketplace/purchase", tok, fiber.Map{
		"marketplace_item_id": 1001, "phone_number": "p", "payment_method": "cash",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusBadRequest || got != "shipping_address is required" {
		t.Fatalf("missing address: got %d %q", resp.StatusCode, got)
	}

	resp, err = e.app.Test(authedReq("POST", "/marketplace/purchase", tok, fiber.Map{
		"shipping_address": "a", "phone_number": "p", "payment_method": "cash",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusBadRequest || got != "marketplace_item_id is required" {
		t.Fatalf("missing item id: got %d %q", resp.StatusCode, got)
	}
}

func TestSelfPurchaseRejectedOverHTTP(t *testing.T) {
	e := newEnv(t)
	tok := registerAndLogin(t, e, "seller@x.com", "seller", "pw1")
	cid := createClassification(t, e, tok, "working")

	resp, err := e.app.Test(authedReq("POST", "/marketplace/", tok, fiber.Map{
		"classification_id": cid, "title": "Mouse", "price": 5.0, "category_id": 6,
	}))
	if err != nil {
		t.Fatal(err)
	}
	var item map[string]any
	decodeBody(t, resp, &item)

	resp, err = e.app.Test(authedReq("POST", "/marketplace/purchase", tok, fiber.Map{
		"marketplace_item_id": item["id"],
		"shipping_address":    "a", "phone_number": "p", "payment_method": "cash",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusBadRequest || got != "cannot purchase your own item" {
		t.Fatalf("self purchase: got %d %q", resp.StatusCode, got)
	}
}

func TestMarketplaceFilterQueries(t *testing.T) {
	e := newEnv(t)

	resp, err := e.app.Test(httptest.NewRequest("GET", "/marketplace/?min_price=abc", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := errMessage(t, resp); resp.StatusCode != http.StatusBadRequest || got != "invalid min_price parameter" {
		t.Fatalf("bad min_price: got %d %q", resp.StatusCode, got)
	}

	resp, err = e.app.Test(httptest.NewRequest("GET", "/marketplace/?is_selling=false", nil))
	if err != nil {
		t.Fatal(err)
	}
	var views []map[string]any
	decodeBody(t, resp, &views)
	if len(views) != 0 {
		t.Fatalf("is_selling=false must hide the static catalog, got %d items", len(views))
	}
}

func TestCategoriesEndpointSeeds(t *testing.T) {
	e := newEnv(t)

	resp, err := e.app.Test(httptest.NewRequest("GET", "/marketplace/categories", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var cats []map[string]any
	decodeBody(t, resp, &cats)
	if len(cats) != 6 {
		t.Fatalf("want 6 categories, got %d", len(cats))
	}
}
