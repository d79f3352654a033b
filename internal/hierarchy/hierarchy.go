package hierarchy

import (
	"go/types"

	"github.com/spicycat/dbctxguard/internal/typeutil"
)

// MaxDepth bounds the base-type walk independently of the visited set.
const MaxDepth = 64

// Symbol is a resolved type together with its direct base types.
type Symbol interface {
	// QualifiedName returns "pkg/path.Name".
	QualifiedName() string
	// Bases returns the direct base types in declaration order.
	Bases() []Symbol
}

// IsController reports whether sym is the marker type or derives from it.
// A nil symbol is never a controller.
func IsController(sym Symbol, marker string) bool {
	if sym == nil || marker == "" {
		return false
	}

	return walk(sym, marker, make(map[string]struct{}), 0)
}

func walk(sym Symbol, marker string, visited map[string]struct{}, depth int) bool {
	if sym == nil || depth >= MaxDepth {
		return false
	}

	name := sym.QualifiedName()
	if name == marker {
		return true
	}

	if _, seen := visited[name]; seen {
		return false
	}
	visited[name] = struct{}{}

	for _, base := range sym.Bases() {
		if walk(base, marker, visited, depth+1) {
			return true
		}
	}

	return false
}

// namedSymbol adapts a *types.Named to Symbol.
// Its bases are the named types embedded in its struct.
type namedSymbol struct {
	named *types.Named
}

// FromType returns the Symbol for t, looking through pointers and aliases.
// Returns nil when t is not a named type.
func FromType(t types.Type) Symbol {
	if t == nil {
		return nil
	}

	named := typeutil.Named(t)
	if named == nil {
		return nil
	}

	return namedSymbol{named: named}
}

func (s namedSymbol) QualifiedName() string {
	return typeutil.QualifiedName(s.named.Obj())
}

func (s namedSymbol) Bases() []Symbol {
	embedded := typeutil.EmbeddedNamed(s.named)
	if len(embedded) == 0 {
		return nil
	}

	bases := make([]Symbol, len(embedded))
	for i, e := range embedded {
		bases[i] = namedSymbol{named: e}
	}

	return bases
}
