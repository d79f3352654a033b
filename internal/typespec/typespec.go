// Package typespec provides shared type specification parsing and matching.
package typespec

import (
	"go/types"
	"strings"

	"github.com/spicycat/dbctxguard/internal/typeutil"
)

// Spec holds parsed components of a type specification.
// Format: "pkg/path.TypeName" (e.g., "gorm.io/gorm.DB").
type Spec struct {
	PkgPath  string
	TypeName string
}

// Parse parses a single type specification string into components.
// The second return value is false when s has no package qualifier.
func Parse(s string) (Spec, bool) {
	s = strings.TrimSpace(s)

	lastDot := strings.LastIndex(s, ".")
	if lastDot <= 0 || lastDot == len(s)-1 {
		return Spec{}, false
	}

	// Dots may appear in the path (gorm.io/gorm), but not in the type name.
	if strings.Contains(s[lastDot+1:], "/") {
		return Spec{}, false
	}

	return Spec{
		PkgPath:  s[:lastDot],
		TypeName: s[lastDot+1:],
	}, true
}

// ParseList parses a comma-separated list of type specifications.
// Empty and malformed entries are skipped.
func ParseList(s string) []Spec {
	if s == "" {
		return nil
	}

	var specs []Spec

	for part := range strings.SplitSeq(s, ",") {
		spec, ok := Parse(part)
		if !ok {
			continue
		}
		specs = append(specs, spec)
	}

	return specs
}

// FullName returns the qualified "pkg/path.TypeName" form.
func (s Spec) FullName() string {
	return s.PkgPath + "." + s.TypeName
}

// Matches checks if the type, looking through pointers, is the specified named type.
func (s Spec) Matches(t types.Type) bool {
	obj := typeutil.TypeName(t)
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == s.PkgPath && obj.Name() == s.TypeName
}
