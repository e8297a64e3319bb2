package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, name, price, description, image_path
	  FROM products
	  ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, price, description, image_path
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Create(name string, price int64, description, imagePath string) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, price, description, image_path)
	  VALUES(?, ?, ?, ?)
	`, name, price, description, imagePath)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
