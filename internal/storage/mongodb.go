// Package storage реализует хранилище данных на основе MongoDB.
// Документы лежат в двух коллекциях: users (ключ — uid пользователя)
// и tasks (ключ — идентификатор, назначаемый хранилищем при создании).
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Storage инкапсулирует подключение к MongoDB и коллекции приложения.
type Storage struct {
	Client   *mongo.Client
	db       *mongo.Database
	colTasks *mongo.Collection
	colUsers *mongo.Collection
}

// New подключается к MongoDB, проверяет соединение и инициализирует коллекции.
func New(ctx context.Context, uri, dbname string) (*Storage, error) {
	const op = "storage.New"

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRetryWrites(true).
		SetMaxPoolSize(50),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db := client.Database(dbname)
	return &Storage{
		Client:   client,
		db:       db,
		colTasks: db.Collection("tasks"),
		colUsers: db.Collection("users"),
	}, nil
}

// EnsureIndexes создаёт индексы для выборок задач по владельцу.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	const op = "storage.EnsureIndexes"
	_, err := s.colTasks.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_uid", Value: 1}},
			Options: options.Index().SetName("idx_user_uid"),
		},
		{
			Keys:    bson.D{{Key: "user_uid", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_user_uid_status"),
		},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close разрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
