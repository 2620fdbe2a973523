// Package models содержит доменную модель пользователя системы.
// Идентификатор пользователя выдаётся внешним провайдером аутентификации,
// документ хранится в коллекции users под этим идентификатором.
package models

import "time"

// PlanStatusActive единственный статус оплаченного тарифа.
// Переход возможен только из состояния "нет тарифа" в active.
const PlanStatusActive = "active"

// Plan представляет оплаченный тариф пользователя.
type Plan struct {
	Price     int       `bson:"price" json:"price"`          // Цена тарифа
	Duration  string    `bson:"duration" json:"duration"`    // Длительность, например "1 month"
	Status    string    `bson:"status" json:"status"`        // Всегда active после оплаты
	StartDate time.Time `bson:"start_date" json:"startDate"` // Серверное время активации
}

// User представляет пользователя системы.
// Поле Plan равно nil, пока у пользователя нет подтверждённой оплаты.
type User struct {
	UID         string `bson:"_id" json:"uid"`                  // Идентификатор из провайдера аутентификации
	Email       string `bson:"email" json:"email"`              // Электронная почта
	DisplayName string `bson:"display_name" json:"displayName"` // Отображаемое имя
	Plan        *Plan  `bson:"plan,omitempty" json:"plan,omitempty"`
}
