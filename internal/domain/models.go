package domain

// Order statuses, by convention only (no DB constraint).
const (
	StatusPending   = "pending"
	StatusOnWay     = "onWay"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Product struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Price       int64  `db:"price" json:"price"` // minor units
	Description string `db:"description" json:"description"`
	ImagePath   string `db:"image_path" json:"image_path"`
	// ImageURL is derived at read time, never persisted.
	ImageURL string `db:"-" json:"image_url"`
}

type CartItem struct {
	ID        int64   `db:"id" json:"id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Product   Product `db:"product" json:"product"`
}

// DeliveryDate is a singleton row (id = 1): the one global
// next-available delivery date shown to every customer.
type DeliveryDate struct {
	ID           int64  `db:"id" json:"id"`
	DeliveryDate string `db:"delivery_date" json:"delivery_date"`
	UpdatedAt    string `db:"updated_at" json:"updated_at"`
}

type Order struct {
	ID              int64       `db:"id" json:"id"`
	DeliveryDate    string      `db:"delivery_date" json:"delivery_date"`
	DeliveryTime    string      `db:"delivery_time" json:"delivery_time"`
	DeliveryAddress string      `db:"delivery_address" json:"delivery_address"`
	Status          string      `db:"status" json:"status"`
	TotalPrice      int64       `db:"total_price" json:"total_price"`
	CreatedAt       string      `db:"created_at" json:"created_at"`
	Items           []OrderItem `db:"-" json:"items"`
}

// OrderItem is a denormalized snapshot of the product at order time,
// so later catalog edits never change historical orders.
type OrderItem struct {
	ID          int64  `db:"id" json:"id"`
	OrderID     int64  `db:"order_id" json:"order_id"`
	ProductID   int64  `db:"product_id" json:"product_id"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int    `db:"quantity" json:"quantity"`
	Price       int64  `db:"price" json:"price"`
}
