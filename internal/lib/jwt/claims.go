// Package jwt реализует выпуск и проверку токенов доступа с пользовательскими
// claim-полями. Verifier — единственная точка, где непрозрачный bearer-токен
// превращается в доверенную личность пользователя.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в токене.
// UID пользователя лежит в стандартном поле Subject.
type CustomClaims struct {
	Email                string `json:"email"` // Электронная почта пользователя
	DisplayName          string `json:"name"`  // Отображаемое имя
	jwt.RegisteredClaims        // Стандартные claims (Subject, ExpiresAt, IssuedAt и пр.)
}

// Verifier описывает интерфейс проверки bearer-токена.
//
// ParseToken возвращает *CustomClaims, если токен подписан верно и не истёк.
type Verifier interface {
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует выпуск и проверку токенов на секретном ключе HS256.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewJWTMaker создаёт новый экземпляр MakerImpl с секретным ключом и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
