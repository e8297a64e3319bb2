package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

const cartSelect = `
  SELECT ci.id, ci.product_id, ci.quantity,
         p.id          AS "product.id",
         p.name        AS "product.name",
         p.price       AS "product.price",
         p.description AS "product.description",
         p.image_path  AS "product.image_path"
  FROM cart_items ci
  JOIN products p ON p.id = ci.product_id
`

func (r *CartRepo) List() ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	err := r.db.Select(&out, cartSelect+` ORDER BY ci.id`)
	return out, err
}

func (r *CartRepo) Get(id int64) (domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.Get(&it, cartSelect+` WHERE ci.id = ?`, id)
	return it, err
}

func (r *CartRepo) Insert(productID int64, qty int) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO cart_items(product_id, quantity) VALUES(?, ?)
	`, productID, qty)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Delete removes one cart item; sql.ErrNoRows when the id is absent.
func (r *CartRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM cart_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CartRepo) Clear() error {
	_, err := r.db.Exec(`DELETE FROM cart_items`)
	return err
}
