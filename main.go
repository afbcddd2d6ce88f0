package main

import (
	"log"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"orderportal/catalog"
	"orderportal/collections"
	"orderportal/handlers"
	"orderportal/sessions"
)

// Config holds runtime settings, read from PORTAL_* environment variables.
type Config struct {
	WorkbookPath   string        `envconfig:"WORKBOOK_PATH" default:"database.xlsx"`
	CatalogTTL     time.Duration `envconfig:"CATALOG_TTL" default:"5m"`
	WhatsAppNumber string        `envconfig:"WHATSAPP_NUMBER" default:"919891286714"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("portal", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	app := pocketbase.New()

	store := catalog.NewStore(cfg.WorkbookPath, cfg.CatalogTTL)
	mgr := sessions.NewManager()

	// Create collections and seed demo accounts on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if _, err := store.Get(); err != nil {
			log.Printf("Warning: catalogue workbook not loaded: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve the session cookie for every request
		se.Router.BindFunc(handlers.SessionMiddleware(mgr))

		// ── Auth ─────────────────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage())
		se.Router.POST("/login", handlers.HandleLogin(app, store, mgr))
		se.Router.POST("/logout", handlers.HandleLogout(mgr))
		se.Router.GET("/signup", handlers.HandleSignupPage())
		se.Router.POST("/signup", handlers.HandleSignup(app, cfg.WhatsAppNumber))

		// ── Browsing ─────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome(store))
		se.Router.GET("/order", handlers.HandleOrderPad(store))
		se.Router.GET("/order/variants", handlers.HandleVariantOptions(store))

		// ── Cart and checkout ────────────────────────────────────
		se.Router.GET("/cart", handlers.HandleCartView(cfg.WhatsAppNumber))
		se.Router.POST("/cart/items", handlers.HandleCartAdd(store))
		se.Router.POST("/cart/clear", handlers.HandleCartClear())
		se.Router.POST("/cart/finalize", handlers.HandleCartFinalize())
		se.Router.GET("/cart/export/excel", handlers.HandleOrderExportExcel())
		se.Router.GET("/cart/export/pdf", handlers.HandleOrderExportPDF())

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
