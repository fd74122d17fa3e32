// Package yamlutil wraps YAML parsing to isolate the external dependency.
// JSON documents are valid YAML, so the same decoder serves both formats.
package yamlutil

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping     = errors.New("yamlutil: document is not a key/value mapping")
	ErrNestedValue    = errors.New("yamlutil: nested values are not allowed")
)

// Pair is one key/value entry of a flat document, in document order.
type Pair struct {
	Key   string
	Value string
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalFlat decodes a single-level mapping into ordered pairs.
// Values keep the text written in the document, so an unquoted 0123 stays
// "0123" rather than becoming an octal number. null becomes "".
// Returns ErrNestedValue if any value is a mapping or a sequence.
func UnmarshalFlat(data []byte) ([]Pair, error) {
	var doc yaml.MapSlice
	if err := validateInput(data, &doc); err != nil {
		return nil, err
	}
	// The decode rejects syntax errors, duplicate keys and non-mapping
	// documents; the AST below supplies the original scalar text.
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMapping, err)
	}
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMapping, err)
	}
	entries, err := mappingEntries(file)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(entries))
	for i, entry := range entries {
		var decoded yaml.MapItem
		if len(doc) == len(entries) {
			decoded = doc[i]
		}
		key, err := scalarText(entry.Key, decoded.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d has a non-scalar key", err, i+1)
		}
		value, err := scalarText(entry.Value, decoded.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q", err, key)
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}

// mappingEntries returns the key/value nodes of the first document.
func mappingEntries(file *ast.File) ([]*ast.MappingValueNode, error) {
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, ErrNotMapping
	}
	switch body := unwrapNode(file.Docs[0].Body).(type) {
	case *ast.MappingNode:
		return body.Values, nil
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{body}, nil
	default:
		return nil, ErrNotMapping
	}
}

// unwrapNode strips tags and anchors down to the node they decorate.
func unwrapNode(n ast.Node) ast.Node {
	for {
		switch v := n.(type) {
		case *ast.TagNode:
			n = v.Value
		case *ast.AnchorNode:
			n = v.Value
		default:
			return n
		}
	}
}

// scalarText returns the text of a scalar node as written in the document.
// Aliases have no text of their own and fall back to the decoded value.
func scalarText(n ast.Node, decoded any) (string, error) {
	switch v := unwrapNode(n).(type) {
	case nil, *ast.NullNode:
		return "", nil
	case *ast.StringNode:
		return v.Value, nil
	case *ast.LiteralNode:
		return v.Value.Value, nil
	case *ast.MappingNode, *ast.MappingValueNode, *ast.SequenceNode:
		return "", ErrNestedValue
	case *ast.AliasNode:
		return scalarString(decoded)
	default:
		return v.GetToken().Value, nil
	}
}

// scalarString renders a decoded YAML scalar in its plain string form.
func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(time.DateOnly), nil
		}
		return val.Format(time.RFC3339), nil
	case yaml.MapSlice, map[string]any, map[any]any, []any:
		return "", ErrNestedValue
	default:
		return fmt.Sprint(val), nil
	}
}
