// Package payment содержит бизнес-логику платёжного потока: создание заказа
// в шлюзе, проверку подписи обратного вызова и активацию тарифа пользователя.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/magabrotheeeer/taskpay/internal/models"
	"github.com/magabrotheeeer/taskpay/internal/paymentprovider"
	userservice "github.com/magabrotheeeer/taskpay/internal/services/user"
)

// UserRepository определяет запись тарифа пользователя в хранилище.
type UserRepository interface {
	UpdateUserPlan(ctx context.Context, uid string, plan models.Plan) error
}

// Cache описывает инвалидацию кешированных данных пользователя.
type Cache interface {
	Invalidate(ctx context.Context, key string) error
}

// GatewayClient определяет интерфейс платёжного шлюза.
type GatewayClient interface {
	CreateOrder(ctx context.Context, req paymentprovider.CreateOrderRequest) (*paymentprovider.OrderResponse, error)
	KeyID() string
}

// PaymentService реализует платёжный поток.
type PaymentService struct {
	gateway   GatewayClient
	users     UserRepository
	cache     Cache
	keySecret string
	log       *slog.Logger
}

// New создает новый экземпляр PaymentService.
// keySecret — общий секрет шлюза, которым подписываются обратные вызовы.
func New(gateway GatewayClient, users UserRepository, cache Cache, keySecret string, log *slog.Logger) *PaymentService {
	return &PaymentService{
		gateway:   gateway,
		users:     users,
		cache:     cache,
		keySecret: keySecret,
		log:       log,
	}
}

// CreateOrder создаёт заказ в платёжном шлюзе. Сумма приходит в основных
// единицах валюты и конвертируется в минорные. Ошибка шлюза не ретраится:
// клиент инициирует новую попытку новым запросом.
func (s *PaymentService) CreateOrder(ctx context.Context, amount float64) (*paymentprovider.OrderResponse, error) {
	order, err := s.gateway.CreateOrder(ctx, paymentprovider.CreateOrderRequest{
		Amount:         int(math.Round(amount * 100)),
		Currency:       "INR",
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	s.log.Info("created payment order", slog.String("order_id", order.ID))
	return order, nil
}

// Key возвращает публикуемый ключ шлюза.
func (s *PaymentService) Key() string {
	return s.gateway.KeyID()
}

// VerifyCallback проверяет подпись обратного вызова шлюза и при совпадении
// активирует тариф пользователя. Возвращает идентификатор платежа как референс.
//
// Подпись сверяется в константное время. Несовпадение возвращает
// ErrVerificationFailed без каких-либо записей в хранилище. Ошибка записи
// тарифа после корректной подписи — ошибка сервера, не успех.
func (s *PaymentService) VerifyCallback(ctx context.Context, uid string, req models.DummyVerification) (string, error) {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(req.OrderID + "|" + req.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		s.log.Warn("payment signature mismatch", slog.String("order_id", req.OrderID))
		return "", models.ErrVerificationFailed
	}

	plan := models.Plan{
		Price:     req.Plan.Price,
		Duration:  req.Plan.Duration,
		Status:    models.PlanStatusActive,
		StartDate: time.Now().UTC(),
	}
	if err := s.users.UpdateUserPlan(ctx, uid, plan); err != nil {
		return "", fmt.Errorf("activate plan: %w", err)
	}

	if err := s.cache.Invalidate(ctx, userservice.CacheKey(uid)); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("uid", uid), slog.Any("err", err))
	}

	s.log.Info("activated user plan",
		slog.String("uid", uid),
		slog.Int("price", plan.Price),
		slog.String("duration", plan.Duration))
	return req.PaymentID, nil
}
