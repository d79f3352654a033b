// Package noncontroller tests types unrelated to the marker type.
package noncontroller

import (
	"github.com/example/data"
	"gorm.io/gorm"
)

// OrdersService has no relation to the marker type.
type OrdersService struct {
	db *data.AppDbContext
}

// [GOOD]: Not a controller
func NewOrdersService(db *data.AppDbContext) *OrdersService {
	return &OrdersService{db: db}
}

// [GOOD]: Not a controller, several contexts
func NewReportingService(a data.AppDbContext, b *data.ReportingDbContext, g *gorm.DB) *OrdersService {
	return &OrdersService{db: &a}
}

// OrdersController only has a controller-like name.
type OrdersController struct {
	svc data.IOrderService
}

// [GOOD]: Name alone does not make a controller
func NewOrdersController(db *data.AppDbContext) *OrdersController {
	return &OrdersController{}
}
