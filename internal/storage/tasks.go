package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/magabrotheeeer/taskpay/internal/models"
)

// sortFields отображает поля сортировки из API на поля документа.
// Неизвестное значение откатывается на срок выполнения.
var sortFields = map[string]string{
	"dueDate":   "due_date",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"status":    "status",
}

// CreateTask вставляет новую задачу, назначая ей идентификатор,
// и возвращает запись вместе с ним.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	const op = "storage.CreateTask"

	task.ID = uuid.NewString()
	if _, err := s.colTasks.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &task, nil
}

// GetTask возвращает задачу по её идентификатору без проверки владельца.
// Проверка принадлежности выполняется бизнес-логикой.
func (s *Storage) GetTask(ctx context.Context, id string) (*models.Task, error) {
	const op = "storage.GetTask"

	var task models.Task
	err := s.colTasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &task, nil
}

// ListTasks возвращает задачи пользователя с фильтром по статусу и сортировкой.
func (s *Storage) ListTasks(ctx context.Context, userUID string, filter models.TaskFilter) ([]*models.Task, error) {
	const op = "storage.ListTasks"

	query := bson.M{"user_uid": userUID}
	if filter.Status != "" && filter.Status != "all" {
		query["status"] = filter.Status
	}

	field, ok := sortFields[filter.SortBy]
	if !ok {
		field = "due_date"
	}
	dir := 1
	if filter.SortOrder == "desc" {
		dir = -1
	}

	cursor, err := s.colTasks.Find(ctx, query, options.Find().SetSort(bson.D{{Key: field, Value: dir}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.Task
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateTask применяет частичное обновление к задаче пользователя и возвращает
// её состояние после записи. Фильтр по владельцу делает проверку и запись
// одним атомарным шагом: конкурентное удаление проявляется как ErrTaskNotFound.
func (s *Storage) UpdateTask(ctx context.Context, id, userUID string, set bson.M) (*models.Task, error) {
	const op = "storage.UpdateTask"

	var task models.Task
	err := s.colTasks.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_uid": userUID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &task, nil
}

// RemoveTask удаляет задачу пользователя.
func (s *Storage) RemoveTask(ctx context.Context, id, userUID string) error {
	const op = "storage.RemoveTask"

	res, err := s.colTasks.DeleteOne(ctx, bson.M{"_id": id, "user_uid": userUID})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrTaskNotFound
	}
	return nil
}
