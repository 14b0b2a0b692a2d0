package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"ecycle/internal/blob"
	"ecycle/internal/catalog"
	"ecycle/internal/http/handlers"
	"ecycle/internal/repos"
	"ecycle/internal/services"
)

type env struct {
	app  *fiber.App
	db   *sqlx.DB
	auth *services.AuthService
}

// newEnv builds an app with the full route surface against a fresh in-memory
// database, without the listener-level middlewares.
func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	authSvc := &services.AuthService{
		Users:      repos.NewUserRepo(db),
		Secret:     "test-secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
	blobs, err := blob.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	deps := handlers.NewDeps(db, authSvc, catalog.Load(), blobs)
	user := handlers.RequireUser(authSvc)
	admin := handlers.AdminOnly()

	app := fiber.New()

	auth := app.Group("/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", deps.AuthHandler.Login)
	auth.Post("/refresh", deps.AuthHandler.Refresh)
	auth.Get("/me", user, deps.AuthHandler.Me)

	adm := app.Group("/admin")
	adm.Get("/users", user, admin, deps.AdminHandler.ListUsers)
	adm.Post("/create-admin", user, admin, deps.AdminHandler.CreateAdmin)
	adm.Post("/init-admin", deps.AdminHandler.InitAdmin)

	classify := app.Group("/classify")
	classify.Post("/", user, deps.ClassifyHandler.Create)
	classify.Post("/upload-image/:id", user, deps.ClassifyHandler.UploadImage)
	classify.Get("/", user, deps.ClassifyHandler.List)

	disposal := app.Group("/disposal")
	disposal.Post("/", user, deps.DisposalHandler.Schedule)
	disposal.Get("/", user, deps.DisposalHandler.List)
	disposal.Get("/vendors", deps.DisposalHandler.Vendors)

	donate := app.Group("/donate")
	donate.Post("/", user, deps.DonateHandler.Register)
	donate.Get("/", user, deps.DonateHandler.List)
	donate.Get("/organizations", deps.DonateHandler.Organizations)

	market := app.Group("/marketplace")
	market.Get("/categories", deps.MarketplaceHandler.Categories)
	market.Post("/", user, deps.MarketplaceHandler.Create)
	market.Get("/", deps.MarketplaceHandler.List)
	market.Post("/purchase", user, deps.MarketplaceHandler.Purchase)
	market.Get("/my-items", user, deps.MarketplaceHandler.MyItems)
	market.Get("/receipt/:purchase_id", user, deps.MarketplaceHandler.Receipt)

	repair := app.Group("/repair")
	repair.Get("/shops", deps.RepairHandler.Shops)
	repair.Get("/faq", deps.RepairHandler.FAQ)

	return &env{app: app, db: db, auth: authSvc}
}

func jsonReq(method, target string, body any) *http.Request {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func authedReq(method, target, token string, body any) *http.Request {
	req := jsonReq(method, target, body)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return req
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// registerAndLogin creates an account through the API and returns its access
// token.
func registerAndLogin(t *testing.T, e *env, email, username, password string) string {
	t.Helper()
	resp, err := e.app.Test(jsonReq("POST", "/auth/register", fiber.Map{
		"email": email, "username": username, "password": password,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register %s: status %d", email, resp.StatusCode)
	}
	resp, err = e.app.Test(jsonReq("POST", "/auth/login", fiber.Map{
		"email": email, "password": password,
	}))
	if err != nil {
		t.Fatal(err)
	}
	var pair services.TokenPair
	decodeBody(t, resp, &pair)
	if pair.AccessToken == "" {
		t.Fatalf("no access token for %s", email)
	}
	return pair.AccessToken
}

func errMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, resp, &body)
	return body["error"]
}
