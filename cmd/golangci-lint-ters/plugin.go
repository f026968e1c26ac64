// golangcilintters package provides a plugin for golangci-lint to integrate
// the ters analyzer. To build a custom golangci-lint binary with this plugin,
// use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-ters binary that you can use to lint your
// Go code with the ters analyzer.
package golangcilintters

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/AdinAck/ters/pkg/tersanalysis"
)

func init() {
	register.Plugin("ters", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return TersLinter{}, nil
}

type TersLinter struct{}

func (TersLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{tersanalysis.Analyzer}, nil
}

func (TersLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
