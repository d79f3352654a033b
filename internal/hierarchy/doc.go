// Package hierarchy identifies controller types by walking base types.
//
// # Overview
//
// A type is a controller when it is the marker type, or when one of its
// base types is a controller. The marker is given as a fully qualified name:
//
//	github.com/beego/beego/v2/server/web.Controller
//
// Comparison is by qualified name only. A type named Controller in another
// package never matches, whatever methods it has.
//
// # Base Types
//
// Go has no inheritance. A named struct's base types are the named types it
// embeds, in declaration order:
//
//	type BaseAPIController struct {
//	    web.Controller          // base
//	}
//
//	type OrdersController struct {
//	    *BaseAPIController      // base (pointer unwrapped)
//	    sync.Mutex              // base, walked after BaseAPIController
//	    svc OrderService        // regular field, ignored
//	}
//
// # Termination
//
// The walk is depth first. It keeps a visited set keyed by qualified name and
// never goes deeper than [MaxDepth], so a symbol graph that points back at
// itself ends the walk instead of looping. Such graphs cannot come out of the
// type checker, but [Symbol] may be implemented by other hosts.
//
// # Symbol Sources
//
// [FromType] adapts go/types. Tests and other hosts can implement [Symbol]
// directly.
package hierarchy
