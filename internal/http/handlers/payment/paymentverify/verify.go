// Package paymentverify обрабатывает обратный вызов платёжного шлюза.
//
// Подпись проверяется сервисом до любых изменений данных. Несовпадение
// подписи — бизнес-отказ со статусом 400 и телом {status: "failure"};
// ошибка активации тарифа после корректной подписи — 500, но не успех.
package paymentverify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/taskpay/internal/http/middlewarectx"
	"github.com/magabrotheeeer/taskpay/internal/http/response"
	"github.com/magabrotheeeer/taskpay/internal/lib/sl"
	"github.com/magabrotheeeer/taskpay/internal/models"
)

// Handler обрабатывает подтверждение оплаты.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс проверки обратного вызова.
type Service interface {
	VerifyCallback(ctx context.Context, uid string, req models.DummyVerification) (string, error)
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
// @Summary Подтвердить оплату
// @Description Проверяет подпись платёжного шлюза и активирует тариф пользователя.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body models.DummyVerification true "Данные обратного вызова шлюза"
// @Success 200 {object} map[string]string "Оплата подтверждена"
// @Failure 400 {object} map[string]string "Подпись не совпала"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка активации тарифа"
// @Router /payment/verification [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.verify"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyVerification
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
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

	reference, err := h.service.VerifyCallback(r.Context(), userUID, req)
	switch {
	case errors.Is(err, models.ErrVerificationFailed):
		log.Error("payment verification failed", slog.String("order_id", req.OrderID))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, map[string]string{
			"status":  "failure",
			"message": "Payment verification failed",
		})
		return
	case err != nil:
		log.Error("failed to activate plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("payment verification failed"))
		return
	}

	log.Info("success to verify payment", slog.String("reference", reference))
	render.JSON(w, r, map[string]string{
		"status":    "success",
		"reference": reference,
	})
}
