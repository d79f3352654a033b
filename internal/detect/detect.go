// Package detect finds database context parameters in controller constructors.
package detect

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"github.com/spicycat/dbctxguard/internal/classify"
	"github.com/spicycat/dbctxguard/internal/rule"
)

// Resolver maps a type expression to its type. *types.Info implements it.
type Resolver interface {
	TypeOf(e ast.Expr) types.Type
}

// Param is one declared parameter of a constructor.
type Param struct {
	Name string // empty for unnamed parameters
	Type ast.Expr
	Pos  token.Pos
	End  token.Pos
}

// Params expands a parameter list into individual parameters.
// "a, b T" yields two parameters, each spanning its name; a field with a
// single name, or none, yields one parameter spanning the whole field.
func Params(fields *ast.FieldList) []Param {
	if fields == nil {
		return nil
	}

	var params []Param

	for _, field := range fields.List {
		if len(field.Names) <= 1 {
			p := Param{Type: field.Type, Pos: field.Pos(), End: field.End()}
			if len(field.Names) == 1 {
				p.Name = field.Names[0].Name
			}
			params = append(params, p)
			continue
		}

		for _, name := range field.Names {
			params = append(params, Param{
				Name: name.Name,
				Type: field.Type,
				Pos:  name.Pos(),
				End:  name.End(),
			})
		}
	}

	return params
}

// Detect yields a diagnostic for every parameter whose type pred classifies
// as a database context, in declaration order. typeName is the simple name of
// the controller declaring the constructor. Parameters whose type cannot be
// resolved are skipped.
func Detect(params []Param, typeName string, resolve Resolver, pred classify.Predicate) iter.Seq[rule.Diagnostic] {
	return func(yield func(rule.Diagnostic) bool) {
		for _, p := range params {
			t := resolveParam(resolve, p.Type)
			if t == nil || !pred.Matches(t) {
				continue
			}

			if !yield(rule.Diagnostic{Pos: p.Pos, End: p.End, TypeName: typeName}) {
				return
			}
		}
	}
}

// resolveParam resolves a parameter type, using the element type of a
// variadic parameter.
func resolveParam(resolve Resolver, expr ast.Expr) types.Type {
	if resolve == nil || expr == nil {
		return nil
	}

	if ellipsis, ok := expr.(*ast.Ellipsis); ok {
		if ellipsis.Elt == nil {
			return nil
		}
		expr = ellipsis.Elt
	}

	t := resolve.TypeOf(expr)
	if t == nil || t == types.Typ[types.Invalid] {
		return nil
	}

	return t
}
