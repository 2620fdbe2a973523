package task

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/taskpay/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}
func (m *RepoMock) GetTask(ctx context.Context, id string) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}
func (m *RepoMock) ListTasks(ctx context.Context, userUID string, filter models.TaskFilter) ([]*models.Task, error) {
	args := m.Called(ctx, userUID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}
func (m *RepoMock) UpdateTask(ctx context.Context, id, userUID string, set bson.M) (*models.Task, error) {
	args := m.Called(ctx, id, userUID, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}
func (m *RepoMock) RemoveTask(ctx context.Context, id, userUID string) error {
	return m.Called(ctx, id, userUID).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyTask
		setupMocks func(r *RepoMock)
		wantStatus string
		wantErr    bool
	}{
		{
			name: "статус по умолчанию pending, владелец из токена",
			req:  models.DummyTask{Title: "Write report", DueDate: "2025-06-01"},
			setupMocks: func(r *RepoMock) {
				r.On("CreateTask", mock.Anything, mock.MatchedBy(func(task models.Task) bool {
					return task.Status == models.TaskStatusPending &&
						task.UserUID == "u1" &&
						!task.CreatedAt.IsZero() &&
						task.CreatedAt.Equal(task.UpdatedAt)
				})).Return(&models.Task{ID: "t1", Title: "Write report", Status: models.TaskStatusPending, UserUID: "u1"}, nil).Once()
			},
			wantStatus: models.TaskStatusPending,
		},
		{
			name: "явный статус completed сохраняется",
			req:  models.DummyTask{Title: "Done already", DueDate: "2025-06-01", Status: models.TaskStatusCompleted},
			setupMocks: func(r *RepoMock) {
				r.On("CreateTask", mock.Anything, mock.MatchedBy(func(task models.Task) bool {
					return task.Status == models.TaskStatusCompleted
				})).Return(&models.Task{ID: "t2", Status: models.TaskStatusCompleted, UserUID: "u1"}, nil).Once()
			},
			wantStatus: models.TaskStatusCompleted,
		},
		{
			name: "ошибка хранилища",
			req:  models.DummyTask{Title: "Broken", DueDate: "2025-06-01"},
			setupMocks: func(r *RepoMock) {
				r.On("CreateTask", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setupMocks(repo)
			svc := New(repo, newNoopLogger())

			task, err := svc.Create(context.Background(), "u1", tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, task.Status)
				assert.Equal(t, "u1", task.UserUID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update_Ownership(t *testing.T) {
	newTitle := "New title"

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		wantErr    error
	}{
		{
			name: "чужая задача возвращает ErrForbidden без записи",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, "t1").
					Return(&models.Task{ID: "t1", UserUID: "other"}, nil).Once()
			},
			wantErr: models.ErrForbidden,
		},
		{
			name: "отсутствующая задача возвращает ErrTaskNotFound",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, "t1").
					Return(nil, models.ErrTaskNotFound).Once()
			},
			wantErr: models.ErrTaskNotFound,
		},
		{
			name: "конкурентное удаление между проверкой и записью",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, "t1").
					Return(&models.Task{ID: "t1", UserUID: "u1"}, nil).Once()
				r.On("UpdateTask", mock.Anything, "t1", "u1", mock.Anything).
					Return(nil, models.ErrTaskNotFound).Once()
			},
			wantErr: models.ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setupMocks(repo)
			svc := New(repo, newNoopLogger())

			_, err := svc.Update(context.Background(), "u1", "t1", models.UpdateTask{Title: &newTitle})
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update_PartialFields(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())
	newTitle := "Updated"

	repo.On("GetTask", mock.Anything, "t1").
		Return(&models.Task{ID: "t1", UserUID: "u1"}, nil).Once()
	repo.On("UpdateTask", mock.Anything, "t1", "u1", mock.MatchedBy(func(set bson.M) bool {
		_, hasTitle := set["title"]
		_, hasDesc := set["description"]
		_, hasUpdatedAt := set["updated_at"]
		_, hasOwner := set["user_uid"]
		return hasTitle && hasUpdatedAt && !hasDesc && !hasOwner
	})).Return(&models.Task{ID: "t1", Title: newTitle, UserUID: "u1"}, nil).Once()

	task, err := svc.Update(context.Background(), "u1", "t1", models.UpdateTask{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, newTitle, task.Title)
	repo.AssertExpectations(t)
}

func TestTaskService_Toggle(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		wantStatus string
	}{
		{name: "pending становится completed", current: models.TaskStatusPending, wantStatus: models.TaskStatusCompleted},
		{name: "completed становится pending", current: models.TaskStatusCompleted, wantStatus: models.TaskStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("GetTask", mock.Anything, "t1").
				Return(&models.Task{ID: "t1", UserUID: "u1", Status: tt.current}, nil).Once()
			repo.On("UpdateTask", mock.Anything, "t1", "u1", mock.MatchedBy(func(set bson.M) bool {
				return set["status"] == tt.wantStatus && set["updated_at"] != nil
			})).Return(&models.Task{ID: "t1", UserUID: "u1", Status: tt.wantStatus, UpdatedAt: time.Now()}, nil).Once()

			svc := New(repo, newNoopLogger())
			task, err := svc.Toggle(context.Background(), "u1", "t1")
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, task.Status)
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_List_Defaults(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListTasks", mock.Anything, "u1", models.TaskFilter{
		Status:    "all",
		SortBy:    "dueDate",
		SortOrder: "asc",
	}).Return([]*models.Task{}, nil).Once()

	svc := New(repo, newNoopLogger())
	tasks, err := svc.List(context.Background(), "u1", models.TaskFilter{})
	assert.NoError(t, err)
	assert.Empty(t, tasks)
	repo.AssertExpectations(t)
}

func TestTaskService_Remove_Forbidden(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetTask", mock.Anything, "t1").
		Return(&models.Task{ID: "t1", UserUID: "owner"}, nil).Once()

	svc := New(repo, newNoopLogger())
	err := svc.Remove(context.Background(), "intruder", "t1")
	assert.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "RemoveTask", mock.Anything, mock.Anything, mock.Anything)
}
