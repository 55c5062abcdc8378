package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"estoque/internal/config"
	"estoque/internal/domain"
	applog "estoque/internal/log"
)

const (
	msgServerError = "Algo deu errado. Tente novamente."
	msgBadRequest  = "Requisição inválida."
	msgNotFound    = "Página não encontrada"
)

// ErrorHandler logs the real error and shows a generic page. Client
// errors keep their status; anything else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, msg := fiber.StatusInternalServerError, msgServerError
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code >= 400 && fe.Code < 500 {
		status, msg = fe.Code, msgBadRequest
		if fe.Code == fiber.StatusNotFound {
			msg = msgNotFound
		}
		applog.Warn(c, "request.rejected", map[string]any{"code": fe.Code, "reason": fe.Message})
	} else {
		applog.Error(c, "server.error", err, nil)
	}
	if rerr := c.Status(status).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(status).SendString(msg)
	}
	return nil
}

// NewEngine loads the page templates with the helpers they use.
func NewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("brl", func(d decimal.Decimal) string { return domain.FormatBR(d) })
	return engine
}

// NewApp builds the fiber app: middleware stack first, then routes.
func NewApp(cfg config.Config, deps *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        NewEngine(cfg.TemplatesDir),
		ErrorHandler: ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 60
	}
	app.Use(limiter.New(limiter.Config{
		Max:        limit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Muitas requisições. Tente novamente em instantes.")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ContextKey:     "csrf",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Warn(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Falha na verificação de segurança. Recarregue a página e tente novamente."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	if cfg.StaticDir != "" {
		app.Static("/static", cfg.StaticDir)
	}

	// ---------- Pages ----------
	stock := deps.StockHandler
	app.Get("/", stock.Home)
	app.Get("/inserir", stock.InsertForm)
	app.Post("/inserir", stock.Insert)
	app.Get("/remover", stock.RemoveForm)
	app.Post("/remover", stock.Remove)
	app.Get("/visualizar", stock.View)
	app.Get("/visualizar/estoque.csv", stock.ExportCSV)

	// ---------- API ----------
	api := app.Group("/api/v1")
	api.Get("/products", deps.APIHandler.Products)
	api.Get("/summary", deps.APIHandler.Summary)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msgNotFound})
	})

	return app
}
