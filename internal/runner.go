// Package internal wires the controller matcher and the parameter detector
// to the go/analysis host.
package internal

import (
	"go/ast"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spicycat/dbctxguard/internal/classify"
	"github.com/spicycat/dbctxguard/internal/constructor"
	"github.com/spicycat/dbctxguard/internal/detect"
	"github.com/spicycat/dbctxguard/internal/directives/ignore"
	"github.com/spicycat/dbctxguard/internal/hierarchy"
	"github.com/spicycat/dbctxguard/internal/rule"
)

// Config holds the rule settings taken from analyzer flags.
type Config struct {
	ControllerBase    string // fully qualified marker type
	ConstructorPrefix string
	DBContext         classify.Predicate
}

// Runner checks every constructor in a pass.
type Runner struct {
	config     Config
	rule       rule.Descriptor
	ignoreMaps map[string]ignore.Map
	skipFiles  map[string]bool
}

// NewRunner creates a runner for one pass.
func NewRunner(config Config, ignoreMaps map[string]ignore.Map, skipFiles map[string]bool) *Runner {
	return &Runner{
		config:     config,
		rule:       rule.DisallowDbContextInController,
		ignoreMaps: ignoreMaps,
		skipFiles:  skipFiles,
	}
}

// Enabled reports whether the configuration can produce any diagnostic.
func (r *Runner) Enabled() bool {
	return r.config.ControllerBase != "" && !r.config.DBContext.Empty()
}

// Run executes the check on the given pass.
// It returns false without inspecting anything when the runner is disabled.
func (r *Runner) Run(pass *analysis.Pass, insp *inspector.Inspector) bool {
	if !r.Enabled() {
		return false
	}

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)

		filename := pass.Fset.Position(decl.Pos()).Filename
		if r.skipFiles[filename] {
			return
		}

		for _, diag := range r.CheckConstructor(pass, decl) {
			if r.shouldIgnore(pass, diag) {
				continue
			}
			pass.Report(r.rule.Analysis(diag))
		}
	})

	return true
}

// CheckConstructor returns the violations in decl, or nothing when decl is
// not a constructor of a controller.
func (r *Runner) CheckConstructor(pass *analysis.Pass, decl *ast.FuncDecl) []rule.Diagnostic {
	named := constructor.EnclosingType(decl, r.config.ConstructorPrefix, pass.Pkg, pass.TypesInfo)
	if named == nil {
		return nil
	}

	if !hierarchy.IsController(hierarchy.FromType(named), r.config.ControllerBase) {
		return nil
	}

	params := detect.Params(decl.Type.Params)

	return slices.Collect(detect.Detect(params, named.Obj().Name(), pass.TypesInfo, r.config.DBContext))
}

// shouldIgnore checks if the diagnostic is suppressed by an ignore directive.
func (r *Runner) shouldIgnore(pass *analysis.Pass, diag rule.Diagnostic) bool {
	pos := pass.Fset.Position(diag.Pos)
	ignoreMap, ok := r.ignoreMaps[pos.Filename]
	if !ok {
		return false
	}

	return ignoreMap.ShouldIgnore(pos.Line)
}
