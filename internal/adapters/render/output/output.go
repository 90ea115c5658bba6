package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/bnema/etrade-cli/internal/domain"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", domain.NewUsageError("output", fmt.Sprintf("unsupported format %q (want json or yaml)", raw))
	}
}

// Write renders value in format, optionally narrowed to the JSONPath selector.
func Write(w io.Writer, value any, format Format, selector string) error {
	data, err := normalize(value)
	if err != nil {
		return err
	}

	if selector = strings.TrimSpace(selector); selector != "" {
		data, err = jsonpath.Get(selector, data)
		if err != nil {
			return domain.NewUsageError("output", fmt.Sprintf("select %q: %v", selector, err))
		}
	}

	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// normalize turns typed values into the generic map/slice form the JSONPath
// evaluator walks, keeping the JSON field names.
func normalize(value any) (any, error) {
	buf, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	var out any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return out, nil
}
