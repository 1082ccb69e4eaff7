package engine

import "github.com/qiminglab/qiming/internal/core/bazi"

// ChartAnalyzerForTest exposes the unexported chart analyzer to the external
// test package, which cannot live in-package without an import cycle through
// store and config.
func (e *Engine) ChartAnalyzerForTest() *bazi.Analyzer {
	return e.chartAnalyzer
}
