package domain

// Request payloads for the JSON API.

type CartItemCreate struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type OrderItemCreate struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

type OrderCreate struct {
	DeliveryDate    string            `json:"delivery_date"`
	DeliveryTime    string            `json:"delivery_time"`
	DeliveryAddress string            `json:"delivery_address"`
	Status          string            `json:"status"`
	TotalPrice      int64             `json:"total_price"`
	Items           []OrderItemCreate `json:"items"`
}

// OrderUpdate lists exactly the fields a PATCH may touch; nil means
// "leave unchanged". Unknown keys in the payload are rejected, not
// silently dropped.
type OrderUpdate struct {
	DeliveryDate    *string `json:"delivery_date"`
	DeliveryTime    *string `json:"delivery_time"`
	DeliveryAddress *string `json:"delivery_address"`
	Status          *string `json:"status"`
}

type DeliveryDateUpdate struct {
	DeliveryDate string `json:"delivery_date"`
}
