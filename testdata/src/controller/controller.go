// Package controller tests controllers embedding the marker type directly.
package controller

import (
	"github.com/beego/beego/v2/server/web"
	"github.com/example/data"
)

// OrdersController embeds the marker type directly.
type OrdersController struct {
	web.Controller
	db  *data.AppDbContext
	svc data.IOrderService
}

// [BAD]: Database context injected
//
// One diagnostic for the database context parameter.
func NewOrdersController(db *data.AppDbContext) *OrdersController { // want `DbContext should not be injected into controller 'OrdersController'`
	return &OrdersController{db: db}
}

// [GOOD]: Service abstraction injected
//
// Suffix does not match.
func NewOrdersControllerWithService(svc data.IOrderService) *OrdersController {
	return &OrdersController{svc: svc}
}

// [BAD]: Two database contexts
//
// One diagnostic per parameter, in declaration order.
func NewOrdersControllerWithReporting(
	a data.AppDbContext, // want `DbContext should not be injected into controller 'OrdersController'`
	svc data.IOrderService,
	b *data.ReportingDbContext, // want `DbContext should not be injected into controller 'OrdersController'`
) *OrdersController {
	return &OrdersController{db: &a, svc: svc}
}

// [BAD]: Shared type for several names
//
// Each name is a parameter.
func NewOrdersControllerShared(a, b *data.AppDbContext) *OrdersController { // want `controller 'OrdersController'` `controller 'OrdersController'`
	return &OrdersController{db: a}
}

// [BAD]: Variadic database contexts
func NewOrdersControllerVariadic(dbs ...*data.AppDbContext) *OrdersController { // want `controller 'OrdersController'`
	return &OrdersController{}
}

// [BAD]: Alias of a database context
//
// The parameter is classified by the type the alias denotes.
func NewOrdersControllerAlias(db *data.Contexts) *OrdersController { // want `controller 'OrdersController'`
	return &OrdersController{db: db}
}

// [BAD]: Constructor with error result
func New(db *data.AppDbContext) (*OrdersController, error) { // want `controller 'OrdersController'`
	return &OrdersController{db: db}, nil
}

// [GOOD]: Names that only look similar
//
// Case differs, or the suffix is not at the end.
func NewOrdersControllerLookalikes(a *data.AppDBContext, b data.DbContextOptions) *OrdersController {
	return &OrdersController{}
}

// [GOOD]: Not a constructor
//
// Methods are never constructors.
func (c *OrdersController) NewChild(db *data.AppDbContext) *OrdersController {
	return &OrdersController{db: db}
}

// [GOOD]: Not a constructor
//
// Name does not start with New.
func BuildOrdersController(db *data.AppDbContext) *OrdersController {
	return &OrdersController{db: db}
}

// [GOOD]: Not a constructor
//
// Does not return the controller.
func NewOrdersControllerName(db *data.AppDbContext) string {
	return "orders"
}

// NewsletterController embeds the marker type directly.
type NewsletterController struct {
	web.Controller
	db *data.AppDbContext
}

// [GOOD]: Not a constructor
//
// New is followed by a lower-case letter.
func Newsletter(db *data.AppDbContext) *NewsletterController {
	return &NewsletterController{db: db}
}

// [BAD]: Prefix followed by an upper-case letter
func NewNewsletterController(db *data.AppDbContext) *NewsletterController { // want `controller 'NewsletterController'`
	return &NewsletterController{db: db}
}
