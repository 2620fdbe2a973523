// Package health реализует проверку живости сервиса.
package health

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Handler отвечает на запрос проверки живости.
type Handler struct{}

// New создает новый экземпляр Handler.
func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
