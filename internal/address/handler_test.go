package address

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/wichananm65/pet-shop-checkout/internal/user"
)

func makeAppWithAddressHandler(a *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				c.Locals("user", &jwt.Token{Claims: &user.Claims{UserID: id}})
			}
		}
		return c.Next()
	})
	a.RegisterProtectedRoutes(app)
	return app
}

func seededHandler(t *testing.T) (*Handler, *Metrics) {
	t.Helper()
	seed := map[int][]Address{
		42: {{Record: Record{ID: 1, Name: "Home", Street: "123 Main Street", City: "Roorkee", State: "UK", Country: "India", Pincode: "247667", Phone: "96390607"}, UserID: 42}},
	}
	m := NewMetrics(prometheus.NewRegistry())
	return NewHandler(NewService(NewInMemoryRepository(seed)), m, zerolog.Nop()), m
}

func decodeList(t *testing.T, body io.Reader) []Address {
	t.Helper()
	var resp addressListResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("decode addressList: %v", err)
	}
	return resp.AddressList
}

const validPayload = `{"address":{"name":"Aniket Saini","street":"66/6B Main Post Office","city":"Roorkee","state":"Uttarakhand","country":"India","pincode":"247667","phone":"9639060737"}}`

func TestAddressRoute(t *testing.T) {
	handler, metrics := seededHandler(t)
	app := makeAppWithAddressHandler(handler)

	// route exists
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	if !routes["/api/v1/address"] || !routes["/api/v1/address/:addressId"] {
		t.Fatalf("expected address routes registered, got %v", routes)
	}

	// unauthorized
	req := httptest.NewRequest("GET", "/api/v1/address", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	// authorized GET returns existing
	req2 := httptest.NewRequest("GET", "/api/v1/address", nil)
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	if list := decodeList(t, res2.Body); len(list) != 1 || list[0].Name != "Home" {
		t.Fatalf("unexpected list: %+v", list)
	}

	// POST new address answers 201 with the full list
	req3 := httptest.NewRequest("POST", "/api/v1/address", strings.NewReader(validPayload))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "42")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for add, got %d", res3.StatusCode)
	}
	list := decodeList(t, res3.Body)
	if len(list) != 2 || list[1].Name != "Aniket Saini" || list[1].ID != 2 {
		t.Fatalf("add response unexpected: %+v", list)
	}

	// update answers 200
	upd := strings.Replace(validPayload, "Aniket Saini", "Ravi Kumar", 1)
	req4 := httptest.NewRequest("POST", "/api/v1/address/2", strings.NewReader(upd))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "42")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for update, got %d", res4.StatusCode)
	}
	list = decodeList(t, res4.Body)
	if len(list) != 2 || list[1].Name != "Ravi Kumar" {
		t.Fatalf("update response unexpected: %+v", list)
	}

	// delete the newly added address
	req5 := httptest.NewRequest("DELETE", "/api/v1/address/2", nil)
	req5.Header.Set("X-User-ID", "42")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", res5.StatusCode)
	}
	if list := decodeList(t, res5.Body); len(list) != 1 {
		t.Fatalf("delete did not remove entry: %+v", list)
	}

	if got := testutil.ToFloat64(metrics.requests.WithLabelValues("create", "ok")); got != 1 {
		t.Fatalf("expected one counted create, got %v", got)
	}
}

func TestAddressRoute_InvalidPayload(t *testing.T) {
	handler, _ := seededHandler(t)
	app := makeAppWithAddressHandler(handler)

	req := httptest.NewRequest("POST", "/api/v1/address", strings.NewReader(`{"address":{"name":"Al","pincode":"12"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	var body struct {
		Message string `json:"message"`
		Errors  Errors `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Errors[FieldName] != MsgName || body.Errors[FieldPincode] != MsgPincode {
		t.Fatalf("unexpected errors: %+v", body.Errors)
	}
}

func TestAddressRoute_UpdateUnknownID(t *testing.T) {
	handler, _ := seededHandler(t)
	app := makeAppWithAddressHandler(handler)

	req := httptest.NewRequest("PATCH", "/api/v1/address/99", strings.NewReader(validPayload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("PATCH", "/api/v1/address/abc", strings.NewReader(validPayload))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", res2.StatusCode)
	}
}
