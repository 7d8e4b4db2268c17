package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/veltrixai/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/veltrixai/go-backend/internal/cfg"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases собирает все обработчики уровня HTTP.
type UseCases struct {
	Auth      usecase.AuthUC
	Business  usecase.BusinessUC
	Catalog   usecase.CatalogUC
	Orders    usecase.OrderUC
	Analytics usecase.AnalyticsUC
	Chat      usecase.ChatUC
	Scanner   usecase.ScannerUC
	Documents usecase.DocumentUC
}

func (r *Router) Init(uc UseCases, parser TokenParser, authCfg *cfg.AuthCfg) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	authHandler := NewAuthHandler(uc.Auth, authCfg, r.logger)
	businessHandler := NewBusinessHandler(uc.Business, r.logger)
	productHandler := NewProductHandler(uc.Catalog, r.logger)
	orderHandler := NewOrderHandler(uc.Orders, r.logger)
	analyticsHandler := NewAnalyticsHandler(uc.Analytics, r.logger)
	chatHandler := NewChatHandler(uc.Chat, r.logger)
	scannerHandler := NewScannerHandler(uc.Scanner, r.logger)
	documentHandler := NewDocumentHandler(uc.Documents, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", authHandler.register)
			auth.Post("/login", authHandler.login)
			auth.Post("/logout", authHandler.logout)
		})

		// Всё остальное требует токена
		v1.Group(func(protected chi.Router) {
			protected.Use(AuthMiddleware(parser, authCfg.CookieName))

			protected.Get("/auth/me", authHandler.me)

			protected.Route("/business", func(bs chi.Router) {
				bs.Get("/", businessHandler.getBusiness)
				bs.Put("/", businessHandler.updateBusiness)
			})

			protected.Route("/products", func(pr chi.Router) {
				pr.Get("/", productHandler.listProducts)
				pr.Post("/", productHandler.createProduct)
				pr.Get("/search", productHandler.searchProducts)
				pr.Put("/{id}", productHandler.updateProduct)
				pr.Delete("/{id}", productHandler.deleteProduct)
			})

			protected.Route("/orders", func(or chi.Router) {
				or.Get("/", orderHandler.listOrders)
				or.Post("/", orderHandler.processOrder)
			})

			protected.Route("/analytics", func(an chi.Router) {
				an.Get("/summary", analyticsHandler.getSummary)
				an.Get("/detail", analyticsHandler.getDetail)
				an.Get("/insights", analyticsHandler.getInsights)
			})

			protected.Route("/chat", func(ch chi.Router) {
				ch.Post("/messages", chatHandler.sendMessage)
				ch.Get("/sessions", chatHandler.listSessions)
				ch.Post("/sessions", chatHandler.createSession)
				ch.Get("/sessions/{id}", chatHandler.getSession)
				ch.Delete("/sessions/{id}", chatHandler.deleteSession)
			})

			protected.Route("/receipts", func(rc chi.Router) {
				rc.Get("/", scannerHandler.history)
				rc.Post("/", scannerHandler.saveReceipt)
				rc.Post("/scan", scannerHandler.scanReceipt)
			})

			protected.Post("/documents", documentHandler.generateDocument)
		})
	})
}
