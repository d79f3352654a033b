// Package classify decides which parameter types count as database contexts.
package classify

import (
	"go/types"
	"strings"

	"github.com/spicycat/dbctxguard/internal/typespec"
	"github.com/spicycat/dbctxguard/internal/typeutil"
)

// DefaultSuffix is the simple-name suffix of database context types.
const DefaultSuffix = "DbContext"

// Predicate classifies types as database contexts.
// A type matches when its simple name ends with any of Suffixes (case
// sensitive), or when it is one of Types.
type Predicate struct {
	Suffixes []string
	Types    []typespec.Spec
}

// Default returns the predicate matching simple names ending in "DbContext".
func Default() Predicate {
	return Predicate{Suffixes: []string{DefaultSuffix}}
}

// New builds a predicate from comma-separated flag values.
func New(suffixes, typeSpecs string) Predicate {
	var p Predicate

	for part := range strings.SplitSeq(suffixes, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p.Suffixes = append(p.Suffixes, part)
	}

	p.Types = typespec.ParseList(typeSpecs)

	return p
}

// Matches reports whether t, looking through pointers, is a database context.
// Unnamed and invalid types never match.
func (p Predicate) Matches(t types.Type) bool {
	if t == nil {
		return false
	}

	obj := typeutil.TypeName(t)
	if obj == nil {
		return false
	}

	if p.hasSuffix(obj.Name()) {
		return true
	}

	for _, spec := range p.Types {
		if spec.Matches(t) {
			return true
		}
	}

	return false
}

// hasSuffix reports whether a simple type name ends with any of p.Suffixes.
func (p Predicate) hasSuffix(name string) bool {
	for _, suffix := range p.Suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

// Empty reports whether p can never match.
func (p Predicate) Empty() bool {
	return len(p.Suffixes) == 0 && len(p.Types) == 0
}
