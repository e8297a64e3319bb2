package services

import (
	"errors"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
	"github.com/yaaasyaaa/platina-granat/internal/repos"
	"github.com/yaaasyaaa/platina-granat/internal/validate"
)

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Place creates the order with its denormalized line items. The cart is
// cleared inside the same transaction (repo-level), so a checkout either
// fully happens or not at all.
func (s *OrderService) Place(in domain.OrderCreate) (domain.Order, error) {
	date, ok := validate.Date(in.DeliveryDate)
	if !ok {
		return domain.Order{}, ErrInvalidDate
	}
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}

	header := domain.Order{
		DeliveryDate:    date,
		DeliveryTime:    in.DeliveryTime,
		DeliveryAddress: in.DeliveryAddress,
		Status:          status,
		TotalPrice:      in.TotalPrice,
	}
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	id, err := s.Orders.Create(header, items)
	if err != nil {
		return domain.Order{}, err
	}
	return s.Orders.Get(id)
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.Orders.List()
}

// Update applies a partial update; an unparseable delivery date means
// nothing is written.
func (s *OrderService) Update(id int64, u domain.OrderUpdate) (domain.Order, error) {
	if u.DeliveryDate != nil {
		date, ok := validate.Date(*u.DeliveryDate)
		if !ok {
			return domain.Order{}, ErrInvalidDate
		}
		u.DeliveryDate = &date
	}
	if err := s.Orders.UpdateFields(id, u); err != nil {
		return domain.Order{}, err
	}
	return s.Orders.Get(id)
}

// Cancel marks the order cancelled; rows are kept.
func (s *OrderService) Cancel(id int64) error {
	return s.Orders.SetStatus(id, domain.StatusCancelled)
}
