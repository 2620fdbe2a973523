// Package paymentcreate обрабатывает создание платёжного заказа в шлюзе.
package paymentcreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/taskpay/internal/http/middlewarectx"
	"github.com/magabrotheeeer/taskpay/internal/http/response"
	"github.com/magabrotheeeer/taskpay/internal/lib/sl"
	"github.com/magabrotheeeer/taskpay/internal/models"
	"github.com/magabrotheeeer/taskpay/internal/paymentprovider"
)

// Handler обрабатывает запросы на создание платёжного заказа.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис платёжной бизнес-логики
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс платёжной бизнес-логики.
type Service interface {
	CreateOrder(ctx context.Context, amount float64) (*paymentprovider.OrderResponse, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать платёжный заказ
// @Description Создает заказ в платёжном шлюзе на указанную сумму.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body models.DummyPaymentOrder true "Сумма платежа"
// @Success 200 {object} paymentprovider.OrderResponse "Созданный заказ"
// @Failure 400 {object} response.ErrorResponse "Некорректная сумма"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка шлюза при создании заказа"
// @Router /payment/process [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPaymentOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid amount"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	order, err := h.service.CreateOrder(r.Context(), req.Amount)
	if err != nil {
		log.Error("failed to create payment order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create payment order"))
		return
	}

	log.Info("success to create payment order", slog.String("order_id", order.ID))
	render.JSON(w, r, order)
}
