package repos

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create writes the order header, its line items and the cart clear in
// one transaction: checkout consumes the shared cart atomically.
func (r *OrderRepo) Create(o domain.Order, items []domain.OrderItem) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO orders(delivery_date, delivery_time, delivery_address, status, total_price)
	  VALUES(?, ?, ?, ?, ?)
	`, o.DeliveryDate, o.DeliveryTime, o.DeliveryAddress, o.Status, o.TotalPrice)
	if err != nil {
		return 0, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, it := range items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_id, product_name, quantity, price)
		  VALUES(?, ?, ?, ?, ?)
		`, orderID, it.ProductID, it.ProductName, it.Quantity, it.Price); err != nil {
			return 0, err
		}
	}

	if _, err := tx.Exec(`DELETE FROM cart_items`); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *OrderRepo) Get(id int64) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, delivery_date, delivery_time, delivery_address, status, total_price, created_at
	  FROM orders
	  WHERE id = ?
	`, id); err != nil {
		return domain.Order{}, err
	}
	items, err := r.items(id)
	if err != nil {
		return domain.Order{}, err
	}
	o.Items = items
	return o, nil
}

// List returns all orders with items, newest first.
func (r *OrderRepo) List() ([]domain.Order, error) {
	out := []domain.Order{}
	if err := r.db.Select(&out, `
	  SELECT id, delivery_date, delivery_time, delivery_address, status, total_price, created_at
	  FROM orders
	  ORDER BY datetime(created_at) DESC, id DESC
	`); err != nil {
		return nil, err
	}
	for i := range out {
		items, err := r.items(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *OrderRepo) items(orderID int64) ([]domain.OrderItem, error) {
	items := []domain.OrderItem{}
	err := r.db.Select(&items, `
	  SELECT id, order_id, product_id, product_name, quantity, price
	  FROM order_items
	  WHERE order_id = ?
	  ORDER BY id
	`, orderID)
	return items, err
}

// UpdateFields applies the non-nil fields of u; sql.ErrNoRows when the
// order is absent.
func (r *OrderRepo) UpdateFields(id int64, u domain.OrderUpdate) error {
	set := []string{}
	args := []any{}
	if u.DeliveryDate != nil {
		set = append(set, "delivery_date = ?")
		args = append(args, *u.DeliveryDate)
	}
	if u.DeliveryTime != nil {
		set = append(set, "delivery_time = ?")
		args = append(args, *u.DeliveryTime)
	}
	if u.DeliveryAddress != nil {
		set = append(set, "delivery_address = ?")
		args = append(args, *u.DeliveryAddress)
	}
	if u.Status != nil {
		set = append(set, "status = ?")
		args = append(args, *u.Status)
	}
	if len(set) == 0 {
		// Nothing to write; still report a missing order.
		var n int
		if err := r.db.Get(&n, `SELECT COUNT(*) FROM orders WHERE id = ?`, id); err != nil {
			return err
		}
		if n == 0 {
			return sql.ErrNoRows
		}
		return nil
	}

	args = append(args, id)
	res, err := r.db.Exec(`UPDATE orders SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetStatus flips the status; sql.ErrNoRows when the order is absent.
func (r *OrderRepo) SetStatus(id int64, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
