// Package ignore tests //dbctxguard:ignore directives.
package ignore

import (
	"github.com/beego/beego/v2/server/web"
	"github.com/example/data"
)

// LegacyController still takes its database context directly.
type LegacyController struct {
	web.Controller
}

// [GOOD]: Ignored on the previous line
//
//dbctxguard:ignore - migrating to IOrderService
func NewLegacyController(db *data.AppDbContext) *LegacyController {
	return &LegacyController{}
}

// [GOOD]: Ignored on the same line
func NewLegacyControllerInline(db *data.AppDbContext) *LegacyController { //dbctxguard:ignore
	return &LegacyController{}
}

// [BAD]: Only the ignored parameter is suppressed
func NewLegacyControllerPartial(
	a *data.AppDbContext, //dbctxguard:ignore
	svc data.IOrderService,
	b *data.ReportingDbContext, // want `controller 'LegacyController'`
) *LegacyController {
	return &LegacyController{}
}

// [BAD]: Unused directive
//
//dbctxguard:ignore // want `unused dbctxguard:ignore directive`
func NewLegacyControllerClean(svc data.IOrderService) *LegacyController {
	return &LegacyController{}
}
