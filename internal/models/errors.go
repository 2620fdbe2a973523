// Package models содержит доменные ошибки, по которым транспортный слой
// выбирает HTTP-статус. Ошибки проверяются через errors.Is, детали
// оборачиваются сервисами через fmt.Errorf с %w.
package models

import "errors"

var (
	// ErrTaskNotFound задача не существует (или была удалена конкурентно).
	ErrTaskNotFound = errors.New("task not found")
	// ErrForbidden задача принадлежит другому пользователю.
	// Отличается от ErrTaskNotFound: чужая задача существует, но недоступна.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound документ пользователя отсутствует в хранилище.
	ErrUserNotFound = errors.New("user not found")
	// ErrVerificationFailed подпись платёжного шлюза не совпала.
	// Тариф пользователя при этой ошибке не изменяется.
	ErrVerificationFailed = errors.New("payment verification failed")
)
