// Command dbctxguard is a linter that reports database contexts injected into controllers.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/spicycat/dbctxguard"
)

func main() {
	singlechecker.Main(dbctxguard.Analyzer)
}
