// Package paymentkey отдаёт публикуемый ключ платёжного шлюза клиентской части.
package paymentkey

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// Handler обрабатывает запрос публикуемого ключа шлюза.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает доступ к публикуемому ключу шлюза.
type Service interface {
	Key() string
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"key": h.service.Key()})
}
