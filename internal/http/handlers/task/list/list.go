// Package list реализует HTTP-обработчик выборки задач текущего пользователя
// с фильтром по статусу и сортировкой из query-параметров.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/taskpay/internal/http/middlewarectx"
	"github.com/magabrotheeeer/taskpay/internal/http/response"
	"github.com/magabrotheeeer/taskpay/internal/lib/sl"
	"github.com/magabrotheeeer/taskpay/internal/models"
)

// Handler управляет HTTP-запросами на выборку задач.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки задач.
type Service interface {
	List(ctx context.Context, userUID string, filter models.TaskFilter) ([]*models.Task, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	filter := models.TaskFilter{
		Status:    r.URL.Query().Get("status"),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("order"),
	}

	tasks, err := h.service.List(r.Context(), userUID, filter)
	if err != nil {
		log.Error("failed to list tasks", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list tasks"))
		return
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	log.Info("list tasks", slog.Int("count", len(tasks)))
	render.JSON(w, r, tasks)
}
