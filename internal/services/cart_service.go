package services

import (
	"github.com/yaaasyaaa/platina-granat/internal/domain"
	"github.com/yaaasyaaa/platina-granat/internal/repos"
	"github.com/yaaasyaaa/platina-granat/internal/validate"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

func (s *CartService) List() ([]domain.CartItem, error) {
	return s.Carts.List()
}

// Add checks the product exists (sql.ErrNoRows bubbles up otherwise),
// inserts the line and returns it joined with its product.
func (s *CartService) Add(productID int64, qty int) (domain.CartItem, error) {
	qty = validate.Qty(qty)
	if _, err := s.Prods.Get(productID); err != nil {
		return domain.CartItem{}, err
	}
	id, err := s.Carts.Insert(productID, qty)
	if err != nil {
		return domain.CartItem{}, err
	}
	return s.Carts.Get(id)
}

func (s *CartService) Remove(id int64) error {
	return s.Carts.Delete(id)
}
