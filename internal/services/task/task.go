// Package task содержит бизнес-логику управления задачами пользователя,
// включая проверку принадлежности задачи перед любым изменением.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/taskpay/internal/models"
)

// TaskRepository определяет методы для работы с задачами в хранилище.
type TaskRepository interface {
	// CreateTask добавляет задачу и возвращает её вместе с назначенным ID.
	CreateTask(ctx context.Context, task models.Task) (*models.Task, error)
	// GetTask возвращает задачу по ID без проверки владельца.
	GetTask(ctx context.Context, id string) (*models.Task, error)
	// ListTasks возвращает задачи пользователя с фильтром и сортировкой.
	ListTasks(ctx context.Context, userUID string, filter models.TaskFilter) ([]*models.Task, error)
	// UpdateTask атомарно применяет изменения к задаче владельца.
	UpdateTask(ctx context.Context, id, userUID string, set bson.M) (*models.Task, error)
	// RemoveTask удаляет задачу владельца.
	RemoveTask(ctx context.Context, id, userUID string) error
}

// TaskService реализует операции над задачами.
type TaskService struct {
	repo TaskRepository
	log  *slog.Logger
}

// New создает новый экземпляр TaskService.
func New(repo TaskRepository, log *slog.Logger) *TaskService {
	return &TaskService{
		repo: repo,
		log:  log,
	}
}

// List возвращает задачи пользователя. Пустой результат — корректный ответ.
func (s *TaskService) List(ctx context.Context, userUID string, filter models.TaskFilter) ([]*models.Task, error) {
	if filter.Status == "" {
		filter.Status = "all"
	}
	if filter.SortBy == "" {
		filter.SortBy = "dueDate"
	}
	if filter.SortOrder != "desc" {
		filter.SortOrder = "asc"
	}
	return s.repo.ListTasks(ctx, userUID, filter)
}

// Create создает новую задачу с владельцем из токена и серверными метками времени.
// Статус по умолчанию pending, клиентский userId из тела запроса игнорируется.
func (s *TaskService) Create(ctx context.Context, userUID string, req models.DummyTask) (*models.Task, error) {
	status := req.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	now := time.Now().UTC()
	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      status,
		UserUID:     userUID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	s.log.Info("created new task", slog.String("id", created.ID))
	return created, nil
}

// checkOwnership загружает задачу и проверяет её принадлежность пользователю.
// Чужая задача возвращает ErrForbidden, а не ErrTaskNotFound: содержимое
// задачи при этом наружу не отдаётся.
func (s *TaskService) checkOwnership(ctx context.Context, id, userUID string) (*models.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserUID != userUID {
		return nil, models.ErrForbidden
	}
	return task, nil
}

// Update применяет частичное обновление: поля со значением nil не меняются,
// updated_at обновляется всегда.
func (s *TaskService) Update(ctx context.Context, userUID, id string, req models.UpdateTask) (*models.Task, error) {
	if _, err := s.checkOwnership(ctx, id, userUID); err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.DueDate != nil {
		set["due_date"] = *req.DueDate
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	updated, err := s.repo.UpdateTask(ctx, id, userUID, set)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated task", slog.String("id", id))
	return updated, nil
}

// Remove удаляет задачу после проверки принадлежности.
func (s *TaskService) Remove(ctx context.Context, userUID, id string) error {
	if _, err := s.checkOwnership(ctx, id, userUID); err != nil {
		return err
	}
	if err := s.repo.RemoveTask(ctx, id, userUID); err != nil {
		return err
	}
	s.log.Info("removed task", slog.String("id", id))
	return nil
}

// Toggle переключает статус задачи pending<->completed.
// Повторное применение возвращает задачу к исходному статусу.
func (s *TaskService) Toggle(ctx context.Context, userUID, id string) (*models.Task, error) {
	task, err := s.checkOwnership(ctx, id, userUID)
	if err != nil {
		return nil, err
	}

	newStatus := models.TaskStatusCompleted
	if task.Status == models.TaskStatusCompleted {
		newStatus = models.TaskStatusPending
	}

	updated, err := s.repo.UpdateTask(ctx, id, userUID, bson.M{
		"status":     newStatus,
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("toggled task status", slog.String("id", id), slog.String("status", newStatus))
	return updated, nil
}
