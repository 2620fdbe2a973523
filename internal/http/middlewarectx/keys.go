// Package middlewarectx содержит HTTP middleware аутентификации и ключи
// контекста, через которые обработчики получают личность пользователя.
package middlewarectx

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserUID — ключ для идентификатора пользователя в контексте
	UserUID Key = "user_uid"
	// UserEmail — ключ для почты пользователя в контексте
	UserEmail Key = "user_email"
	// UserName — ключ для отображаемого имени пользователя в контексте
	UserName Key = "user_name"
)
