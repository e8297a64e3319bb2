package services

import (
	"github.com/yaaasyaaa/platina-granat/internal/repos"
	"github.com/yaaasyaaa/platina-granat/internal/validate"
)

type DeliveryService struct {
	Dates *repos.DeliveryRepo
}

func NewDeliveryService(dates *repos.DeliveryRepo) *DeliveryService {
	return &DeliveryService{Dates: dates}
}

// Current returns the global delivery date; sql.ErrNoRows if the
// singleton row is missing.
func (s *DeliveryService) Current() (string, error) {
	d, err := s.Dates.Get()
	if err != nil {
		return "", err
	}
	return d.DeliveryDate, nil
}

func (s *DeliveryService) Set(date string) (string, error) {
	normalized, ok := validate.Date(date)
	if !ok {
		return "", ErrInvalidDate
	}
	if err := s.Dates.Set(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
