package domain

import "time"

// EnrichedConversion é um registro de pedido enriquecido com dados do cliente,
// usado pelo analisador de comportamento de compra
type EnrichedConversion struct {
	OrderID               string    `json:"order_id"`
	EntityID              string    `json:"entity_id"`
	Date                  time.Time `json:"date"`
	IsFirstPurchase       bool      `json:"is_first_purchase"`
	OrderValue            float64   `json:"order_value"`
	CustomerLifetimeValue float64   `json:"customer_lifetime_value"`
}
