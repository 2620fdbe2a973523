package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/taskpay/internal/models"
)

func setupTestDb(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("27017/tcp"),
			wait.ForLog("Waiting for connections"),
		).WithDeadline(3 * time.Minute),
	}

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	port, err := mongoContainer.MappedPort(ctx, "27017")
	require.NoError(t, err, "Failed to get port")

	uri := fmt.Sprintf("mongodb://localhost:%s", port.Port())

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for range 10 {
		storage, err = New(ctx, uri, "testdb")
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "Failed to create storage after retries")

	require.NoError(t, storage.EnsureIndexes(ctx), "Failed to create indexes")

	cleanup := func() {
		if storage != nil {
			_ = storage.Close(ctx)
		}
		if mongoContainer != nil {
			_ = mongoContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}

// seedTask вставляет задачу через CreateTask и возвращает запись с назначенным id.
func seedTask(t *testing.T, storage *Storage, userUID, title, status, dueDate string) *models.Task {
	now := time.Now().UTC().Truncate(time.Millisecond)
	task, err := storage.CreateTask(context.Background(), models.Task{
		Title:     title,
		DueDate:   dueDate,
		Status:    status,
		UserUID:   userUID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	return task
}

func TestCreateAndGetTask(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	storage, cleanup := setupTestDb(t)
	defer cleanup()

	created := seedTask(t, storage, "u1", "Buy milk", models.TaskStatusPending, "2026-09-01")

	got, err := storage.GetTask(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "u1", got.UserUID)

	_, err = storage.GetTask(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestListTasksStatusPartition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	seedTask(t, storage, "u1", "A", models.TaskStatusPending, "2026-09-01")
	seedTask(t, storage, "u1", "B", models.TaskStatusCompleted, "2026-09-02")
	seedTask(t, storage, "u1", "C", models.TaskStatusPending, "2026-09-03")
	// Чужая задача не должна попадать ни в одну выборку
	seedTask(t, storage, "u2", "D", models.TaskStatusPending, "2026-09-01")

	pending, err := storage.ListTasks(ctx, "u1", models.TaskFilter{Status: models.TaskStatusPending})
	require.NoError(t, err)
	completed, err := storage.ListTasks(ctx, "u1", models.TaskFilter{Status: models.TaskStatusCompleted})
	require.NoError(t, err)
	all, err := storage.ListTasks(ctx, "u1", models.TaskFilter{Status: "all"})
	require.NoError(t, err)

	assert.Len(t, pending, 2)
	assert.Len(t, completed, 1)
	assert.Len(t, all, 3)

	// pending и completed вместе дают ровно all
	ids := map[string]bool{}
	for _, task := range append(pending, completed...) {
		assert.Equal(t, "u1", task.UserUID)
		ids[task.ID] = true
	}
	assert.Len(t, ids, len(all))
	for _, task := range all {
		assert.True(t, ids[task.ID], "task %s missing from the partition", task.ID)
	}
}

func TestListTasksSorting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	seedTask(t, storage, "u1", "Middle", models.TaskStatusPending, "2026-09-02")
	seedTask(t, storage, "u1", "Last", models.TaskStatusPending, "2026-09-03")
	seedTask(t, storage, "u1", "First", models.TaskStatusPending, "2026-09-01")

	tests := []struct {
		name   string
		filter models.TaskFilter
		want   []string
	}{
		{
			name:   "по сроку по возрастанию",
			filter: models.TaskFilter{SortBy: "dueDate", SortOrder: "asc"},
			want:   []string{"First", "Middle", "Last"},
		},
		{
			name:   "по сроку по убыванию",
			filter: models.TaskFilter{SortBy: "dueDate", SortOrder: "desc"},
			want:   []string{"Last", "Middle", "First"},
		},
		{
			name:   "по заголовку",
			filter: models.TaskFilter{SortBy: "title", SortOrder: "asc"},
			want:   []string{"First", "Last", "Middle"},
		},
		{
			name:   "неизвестное поле откатывается на срок",
			filter: models.TaskFilter{SortBy: "bogus", SortOrder: "asc"},
			want:   []string{"First", "Middle", "Last"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := storage.ListTasks(ctx, "u1", tt.filter)
			require.NoError(t, err)
			titles := make([]string, 0, len(tasks))
			for _, task := range tasks {
				titles = append(titles, task.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestUpdateTaskOwnerFilter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	task := seedTask(t, storage, "u1", "Original", models.TaskStatusPending, "2026-09-01")

	// Обновление владельцем проходит и возвращает состояние после записи
	updated, err := storage.UpdateTask(ctx, task.ID, "u1", bson.M{"title": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, models.TaskStatusPending, updated.Status)

	// Чужой uid не проходит фильтр и не меняет документ
	_, err = storage.UpdateTask(ctx, task.ID, "u2", bson.M{"title": "Hijacked"})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	got, err := storage.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	// Удаление между проверкой и записью проявляется как отсутствие задачи
	require.NoError(t, storage.RemoveTask(ctx, task.ID, "u1"))
	_, err = storage.UpdateTask(ctx, task.ID, "u1", bson.M{"title": "Too late"})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestRemoveTaskOwnerFilter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	task := seedTask(t, storage, "u1", "Disposable", models.TaskStatusPending, "2026-09-01")

	// Чужой uid не удаляет документ
	err := storage.RemoveTask(ctx, task.ID, "u2")
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	_, err = storage.GetTask(ctx, task.ID)
	require.NoError(t, err)

	require.NoError(t, storage.RemoveTask(ctx, task.ID, "u1"))
	err = storage.RemoveTask(ctx, task.ID, "u1")
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}
