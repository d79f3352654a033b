package typeutil

import (
	"go/types"
)

// TypeName returns the declared type name behind t, looking through pointers
// and aliases. Returns nil for unnamed types (func, map, struct literals, ...).
func TypeName(t types.Type) *types.TypeName {
	named := Named(t)
	if named == nil {
		return nil
	}

	return named.Obj()
}

// Named returns the named type behind t, looking through pointers and aliases.
// Generic instances are mapped to their origin.
func Named(t types.Type) *types.Named {
	for {
		switch u := t.(type) {
		case *types.Pointer:
			t = u.Elem()
		case *types.Alias:
			t = types.Unalias(u)
		case *types.Named:
			return u.Origin()
		default:
			return nil
		}
	}
}

// QualifiedName returns "pkg/path.Name" for obj, or just "Name" for
// universe-scope objects such as error.
func QualifiedName(obj *types.TypeName) string {
	if obj == nil {
		return ""
	}

	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}

// EmbeddedNamed returns the named types embedded in t's underlying struct,
// in declaration order. Pointer embeddings are unwrapped.
func EmbeddedNamed(t *types.Named) []*types.Named {
	if t == nil {
		return nil
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	var embedded []*types.Named

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		if named := Named(field.Type()); named != nil {
			embedded = append(embedded, named)
		}
	}

	return embedded
}

// IsStruct reports whether t's underlying type is a struct.
func IsStruct(t types.Type) bool {
	_, ok := t.Underlying().(*types.Struct)
	return ok
}
