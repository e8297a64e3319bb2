package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/yaaasyaaa/platina-granat/internal/config"
	"github.com/yaaasyaaa/platina-granat/internal/repos"
	"github.com/yaaasyaaa/platina-granat/internal/services"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	DeliveryHandler *DeliveryHandler
	OrderHandler    *OrderHandler
	StaticHandler   *StaticHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	dateRepo := repos.NewDeliveryRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, cfg.ImgDir)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	deliverySvc := services.NewDeliveryService(dateRepo)
	orderSvc := services.NewOrderService(orderRepo)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		DeliveryHandler: &DeliveryHandler{Delivery: deliverySvc},
		OrderHandler:    &OrderHandler{Order: orderSvc},
		StaticHandler:   &StaticHandler{ImgDir: cfg.ImgDir, IndexPaths: cfg.IndexPaths},
	}
}
