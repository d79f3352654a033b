// Package customtypes tests the -dbcontext-types, -dbcontext-suffix and
// -controller-base flags.
package customtypes

import (
	"github.com/example/data"
	"github.com/example/lookalike"
	"gorm.io/gorm"
)

// UsersController embeds the configured marker type.
type UsersController struct {
	lookalike.Controller
}

// [BAD]: Configured type
func NewUsersController(db *gorm.DB) *UsersController { // want `controller 'UsersController'`
	return &UsersController{}
}

// [BAD]: Configured suffix
func NewUsersControllerStore(s *data.DbContextOptions) *UsersController { // want `controller 'UsersController'`
	return &UsersController{}
}

// [GOOD]: Default suffix replaced by the flag
func NewUsersControllerDefault(db *data.AppDbContext) *UsersController {
	return &UsersController{}
}
