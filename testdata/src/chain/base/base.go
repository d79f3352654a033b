// Package base holds a shared controller base in another package.
package base

import "github.com/beego/beego/v2/server/web"

// BaseApiController embeds the marker type.
type BaseApiController struct {
	web.Controller
	Version string
}
