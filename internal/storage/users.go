package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/taskpay/internal/models"
)

// GetUser возвращает документ пользователя по его uid.
func (s *Storage) GetUser(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.GetUser"

	var user models.User
	err := s.colUsers.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// UpdateUserPlan записывает тариф пользователя одним обновлением поддокумента.
// Читатели никогда не видят частично записанный тариф.
func (s *Storage) UpdateUserPlan(ctx context.Context, uid string, plan models.Plan) error {
	const op = "storage.UpdateUserPlan"

	res, err := s.colUsers.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{"plan": plan}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
