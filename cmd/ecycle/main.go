package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"ecycle/internal/blob"
	"ecycle/internal/catalog"
	"ecycle/internal/config"
	"ecycle/internal/http/handlers"
	applog "ecycle/internal/log"
	"ecycle/internal/repos"
	"ecycle/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	cat := catalog.Load()

	blobs, err := blob.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	authSvc := &services.AuthService{
		Users:      repos.NewUserRepo(db),
		Secret:     cfg.JWTSecret,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// All unanticipated failures get the same non-leaking body.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
		},
	})
	// Global body size guard; uploads are small item photos
	app.Server().MaxRequestBodySize = 8 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/uploads/")
		},
	}))

	// ---------- Uploaded images ----------
	uploadDir := cfg.UploadDir
	if !filepath.IsAbs(uploadDir) {
		if abs, err := filepath.Abs(uploadDir); err == nil {
			uploadDir = abs
		}
	}
	log.Printf("[static] /uploads -> %s", uploadDir)

	// Guarded serving to avoid traversal
	app.Get("/uploads/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "uploads.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "uploads.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(uploadDir, clean), true)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, authSvc, cat, blobs)
	user := handlers.RequireUser(authSvc)
	admin := handlers.AdminOnly()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "E-Cycle API is running", "database": "connected"})
	})

	auth := app.Group("/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)
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

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
