// Package constructor recognizes constructor functions.
//
// Go has no constructor syntax. By convention a constructor is a package-level
// function named New, or New followed by an upper-case letter, whose first
// result is the constructed type or a pointer to it:
//
//	func NewOrdersController(db *data.AppDbContext) *OrdersController
//	func New(svc OrderService) (*Controller, error)
//
// Names such as Newsletter are not constructors. The constructed type must be
// a struct declared in the same package.
package constructor

import (
	"go/ast"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spicycat/dbctxguard/internal/typeutil"
)

// DefaultPrefix is the name prefix of constructor functions.
const DefaultPrefix = "New"

// TypeResolver maps an expression to its type. *types.Info implements it.
type TypeResolver interface {
	TypeOf(e ast.Expr) types.Type
}

// EnclosingType returns the type constructed by decl, or nil when decl is not
// a constructor of a struct type declared in pkg.
func EnclosingType(decl *ast.FuncDecl, prefix string, pkg *types.Package, resolve TypeResolver) *types.Named {
	if decl == nil || decl.Recv != nil || decl.Name == nil || pkg == nil || resolve == nil {
		return nil
	}

	if !hasConstructorName(decl.Name.Name, prefix) {
		return nil
	}

	results := decl.Type.Results
	if results == nil || len(results.List) == 0 {
		return nil
	}

	named := typeutil.Named(resolve.TypeOf(results.List[0].Type))
	if named == nil || named.Obj().Pkg() != pkg {
		return nil
	}

	if !typeutil.IsStruct(named) {
		return nil
	}

	return named
}

// hasConstructorName reports whether name is prefix alone or prefix followed
// by an upper-case letter: New and NewOrders match, Newsletter does not.
func hasConstructorName(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return false
	}

	if rest == "" {
		return true
	}

	r, _ := utf8.DecodeRuneInString(rest)

	return unicode.IsUpper(r)
}
