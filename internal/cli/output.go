package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output format names accepted by --format flags.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// writeFormatted encodes v as YAML or JSON. Text rendering is per command
// and never goes through here.
func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, _ = w.Write(data)
		return nil
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, _ = fmt.Fprintln(w, string(data))
		return nil
	default:
		return fmt.Errorf("unknown format %q (supported: %s, %s, %s)", format, formatText, formatYAML, formatJSON)
	}
}
