// Package paymentprovider реализует клиент внешнего платёжного шлюза.
package paymentprovider

// CreateOrderRequest представляет запрос на создание платёжного заказа.
// Сумма передаётся в минорных единицах валюты.
type CreateOrderRequest struct {
	Amount         int    `json:"amount"`          // Сумма в минорных единицах
	Currency       string `json:"currency"`        // Валюта, например "INR"
	PaymentCapture int    `json:"payment_capture"` // 1 — автоматическое списание
}

// OrderResponse представляет заказ, созданный шлюзом.
type OrderResponse struct {
	ID        string `json:"id"`         // Идентификатор заказа в шлюзе
	Amount    int    `json:"amount"`     // Сумма в минорных единицах
	Currency  string `json:"currency"`   // Валюта заказа
	Status    string `json:"status"`     // Статус заказа, например "created"
	CreatedAt int64  `json:"created_at"` // Unix-время создания
}
