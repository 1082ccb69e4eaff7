package output

import (
	"encoding/json"

	"github.com/qiminglab/qiming/internal/core"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatScore renders a score report as JSON.
func (f *JSONFormatter) FormatScore(report *ScoreReport) (string, error) {
	if report == nil {
		return "", nil
	}
	return f.marshal(report)
}

// FormatSuggestions renders suggestions as JSON.
func (f *JSONFormatter) FormatSuggestions(results []*core.GeneratedName) (string, error) {
	return f.marshal(results)
}

func (f *JSONFormatter) marshal(value interface{}) (string, error) {
	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
