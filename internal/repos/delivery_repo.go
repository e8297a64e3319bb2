package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
)

// DeliveryRepo is the narrow accessor over the delivery_date singleton
// row; nothing else touches that table.
type DeliveryRepo struct{ db *sqlx.DB }

func NewDeliveryRepo(db *sqlx.DB) *DeliveryRepo { return &DeliveryRepo{db: db} }

// Get returns the singleton row; sql.ErrNoRows if it was never seeded.
func (r *DeliveryRepo) Get() (domain.DeliveryDate, error) {
	var d domain.DeliveryDate
	err := r.db.Get(&d, `
	  SELECT id, delivery_date, updated_at
	  FROM delivery_date
	  WHERE id = 1
	`)
	return d, err
}

// Init inserts the row with the given date if it does not exist yet.
func (r *DeliveryRepo) Init(date string) error {
	_, err := r.db.Exec(`
	  INSERT INTO delivery_date(id, delivery_date)
	  VALUES(1, ?)
	  ON CONFLICT(id) DO NOTHING
	`, date)
	return err
}

// Set replaces the date, bumping updated_at.
func (r *DeliveryRepo) Set(date string) error {
	_, err := r.db.Exec(`
	  INSERT INTO delivery_date(id, delivery_date)
	  VALUES(1, ?)
	  ON CONFLICT(id) DO UPDATE SET
	    delivery_date = excluded.delivery_date,
	    updated_at = CURRENT_TIMESTAMP
	`, date)
	return err
}
