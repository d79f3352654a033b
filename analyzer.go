// Package dbctxguard provides a go/analysis based analyzer that reports
// controllers whose constructors take a database context directly.
//
// # DisallowDbContextInController
//
// A controller is a struct that embeds the controller base type, directly or
// through other embedded types. A constructor is a package-level New...
// function returning the struct or a pointer to it. Each constructor
// parameter whose type name ends in "DbContext" is reported:
//
//	type OrdersController struct {
//	    web.Controller
//	}
//
//	func NewOrdersController(db *data.AppDbContext) *OrdersController // reported
//	func NewOrdersController(svc OrderService) *OrdersController       // ok
//
// Controllers should depend on a service or repository abstraction instead.
package dbctxguard

import (
	"errors"
	"flag"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spicycat/dbctxguard/internal"
	"github.com/spicycat/dbctxguard/internal/classify"
	"github.com/spicycat/dbctxguard/internal/constructor"
	"github.com/spicycat/dbctxguard/internal/directives/ignore"
	"github.com/spicycat/dbctxguard/internal/rule"
)

// DefaultControllerBase is the marker type controllers embed.
const DefaultControllerBase = "github.com/beego/beego/v2/server/web.Controller"

// Flags for the analyzer.
var (
	controllerBase    string
	constructorPrefix string
	dbContextSuffix   string
	dbContextTypes    string
)

func init() {
	Analyzer.Flags.StringVar(&controllerBase, "controller-base", DefaultControllerBase,
		"fully qualified type that marks controllers (e.g., github.com/beego/beego/v2/server/web.Controller)")
	Analyzer.Flags.StringVar(&constructorPrefix, "constructor-prefix", constructor.DefaultPrefix,
		"name prefix of constructor functions")
	Analyzer.Flags.StringVar(&dbContextSuffix, "dbcontext-suffix", classify.DefaultSuffix,
		"comma-separated type name suffixes that identify database contexts (case sensitive)")
	Analyzer.Flags.StringVar(&dbContextTypes, "dbcontext-types", "",
		"comma-separated list of types to treat as database contexts (e.g., gorm.io/gorm.DB)")
}

// Analyzer is the main analyzer for dbctxguard.
var Analyzer = &analysis.Analyzer{
	Name:     "dbctxguard",
	Doc:      rule.DisallowDbContextInController.Title,
	URL:      rule.DisallowDbContextInController.URL,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	config := internal.Config{
		ControllerBase:    controllerBase,
		ConstructorPrefix: constructorPrefix,
		DBContext:         classify.New(dbContextSuffix, dbContextTypes),
	}

	// Directives are only unused when the rule actually ran.
	if internal.NewRunner(config, ignoreMaps, skipFiles).Run(pass, insp) {
		reportUnusedIgnores(pass, ignoreMaps)
	}

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map) {
	for _, ignoreMap := range ignoreMaps {
		for _, pos := range ignoreMap.UnusedIgnores() {
			pass.Reportf(pos, "unused dbctxguard:ignore directive")
		}
	}
}
