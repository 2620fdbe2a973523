// Package models содержит доменные структуры приложения: задачи, пользователей
// и вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Статусы задачи. Других значений в хранилище не бывает.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task представляет задачу пользователя, используется в бизнес-логике и хранилище.
// Поле UserUID назначается сервером из токена и никогда не берётся из тела запроса.
type Task struct {
	ID          string    `bson:"_id" json:"id"`                              // Идентификатор, назначается хранилищем
	Title       string    `bson:"title" json:"title"`                         // Заголовок задачи
	Description string    `bson:"description" json:"description"`             // Описание (может быть пустым)
	DueDate     string    `bson:"due_date" json:"dueDate"`                    // Срок выполнения в формате 2006-01-02
	Status      string    `bson:"status" json:"status"`                       // pending или completed
	UserUID     string    `bson:"user_uid" json:"userId"`                     // Владелец задачи
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`                // Серверное время создания
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`                // Серверное время последнего изменения
}

// DummyTask используется для приёма данных из JSON-запроса на создание задачи,
// прежде чем конвертировать их в Task. Дата приходит строкой для ручной валидации.
type DummyTask struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`                 // Заголовок (1-200 символов)
	Description string `json:"description" validate:"omitempty,max=1000"`               // Описание (до 1000 символов)
	DueDate     string `json:"dueDate" validate:"required,datetime=2006-01-02"`         // Срок выполнения
	Status      string `json:"status" validate:"omitempty,oneof=pending completed"`     // Статус (по умолчанию pending)
}

// UpdateTask описывает частичное обновление задачи. Каждое поле опционально:
// nil означает "не менять". Владелец и серверные метки времени здесь отсутствуют
// намеренно, чтобы клиент не мог их перезаписать.
type UpdateTask struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending completed"`
}

// TaskFilter задаёт параметры выборки списка задач.
type TaskFilter struct {
	Status    string // all, pending или completed
	SortBy    string // поле сортировки, по умолчанию due_date
	SortOrder string // asc или desc
}
