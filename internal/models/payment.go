// Package models содержит типы для платёжного потока: запрос на создание
// заказа и полезную нагрузку обратного вызова платёжного шлюза.
package models

// DummyPaymentOrder используется для приёма запроса на создание платёжного заказа.
// Сумма приходит в основных единицах валюты и конвертируется сервисом в минорные.
type DummyPaymentOrder struct {
	Amount float64 `json:"amount" validate:"required,gt=0"` // Сумма платежа (>0)
}

// DummyPlan описывает тариф, который пользователь намеревался купить.
// Передаётся клиентом вместе с результатом оплаты.
type DummyPlan struct {
	Price    int    `json:"price" validate:"required,gt=0"` // Цена тарифа
	Duration string `json:"duration" validate:"required"`   // Длительность тарифа
}

// DummyVerification используется для приёма обратного вызова платёжного шлюза.
// Подпись проверяется сервисом до любых изменений данных пользователя.
type DummyVerification struct {
	OrderID   string    `json:"orderId" validate:"required"`   // Идентификатор заказа в шлюзе
	PaymentID string    `json:"paymentId" validate:"required"` // Идентификатор платежа в шлюзе
	Signature string    `json:"signature" validate:"required"` // HMAC-подпись шлюза
	Plan      DummyPlan `json:"plan" validate:"required"`      // Покупаемый тариф
}
