// Package taskpay предоставляет маршруты для основного приложения.
package taskpay

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/taskpay/internal/http/handlers/auth/profile"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/health"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/payment/paymentcreate"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/payment/paymentkey"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/payment/paymentverify"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/task/create"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/task/list"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/task/remove"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/task/toggle"
	"github.com/magabrotheeeer/taskpay/internal/http/handlers/task/update"
	"github.com/magabrotheeeer/taskpay/internal/http/middlewarectx"
	paymentservice "github.com/magabrotheeeer/taskpay/internal/services/payment"
	taskservice "github.com/magabrotheeeer/taskpay/internal/services/task"
	userservice "github.com/magabrotheeeer/taskpay/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, verifier middlewarectx.Verifier,
	taskService *taskservice.TaskService, userService *userservice.UserService,
	paymentService *paymentservice.PaymentService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	// Открытые конечные точки
	r.Get("/health", health.New().ServeHTTP)
	r.Get("/auth/profile/{uid}", profile.New(logger, userService).ServeHTTP)

	// Группа с проверкой bearer-токена
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.AuthMiddleware(verifier, logger))
		r.Get("/tasks", list.New(logger, taskService).ServeHTTP)
		r.Post("/tasks", create.New(logger, taskService).ServeHTTP)
		r.Put("/tasks/{id}", update.New(logger, taskService).ServeHTTP)
		r.Delete("/tasks/{id}", remove.New(logger, taskService).ServeHTTP)
		r.Patch("/tasks/{id}/toggle", toggle.New(logger, taskService).ServeHTTP)
		r.Post("/payment/process", paymentcreate.New(logger, paymentService).ServeHTTP)
		r.Get("/payment/getKey", paymentkey.New(logger, paymentService).ServeHTTP)
		r.Post("/payment/verification", paymentverify.New(logger, paymentService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
