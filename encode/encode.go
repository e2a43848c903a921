package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jtree/format"
	"github.com/signadot/jtree/ir"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	indent string
	depth  int
	Color  func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w without a trailing newline. JSON output keeps
// object field order and is compact unless EncodeIndent is given.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(ir.ToMapSlice(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, strings.TrimRight(string(d), "\n"))
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, node.Type, "null")
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		s, err := numberText(node)
		if err != nil {
			return err
		}
		return writeValue(w, es, node.Type, s)
	case ir.StringType:
		s, err := quote(node.String)
		if err != nil {
			return err
		}
		return writeValue(w, es, node.Type, s)
	case ir.ArrayType:
		if err := writeSep(w, es, node.Type, "["); err != nil {
			return err
		}
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				if err := writeSep(w, es, node.Type, ","); err != nil {
					return err
				}
			}
			if err := newline(w, es); err != nil {
				return err
			}
			if err := encodeJSON(v, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if len(node.Values) != 0 {
			if err := newline(w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, node.Type, "]")
	case ir.ObjectType:
		if err := writeSep(w, es, node.Type, "{"); err != nil {
			return err
		}
		es.depth++
		for i, f := range node.Fields {
			if i > 0 {
				if err := writeSep(w, es, node.Type, ","); err != nil {
					return err
				}
			}
			if err := newline(w, es); err != nil {
				return err
			}
			k, err := quote(f.String)
			if err != nil {
				return err
			}
			if es.Color != nil {
				k = es.Color(ir.ObjectType, FieldColor, k)
			}
			if err := writeString(w, k); err != nil {
				return err
			}
			if err := writeSep(w, es, node.Type, ":"); err != nil {
				return err
			}
			if es.indent != "" {
				if err := writeString(w, " "); err != nil {
					return err
				}
			}
			if err := encodeJSON(node.Values[i], w, es); err != nil {
				return err
			}
		}
		es.depth--
		if len(node.Fields) != 0 {
			if err := newline(w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, node.Type, "}")
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
}

func numberText(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 != nil {
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v is not a JSON number", ErrEncoding, f)
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s, nil
	}
	if node.Number == "" {
		return "", fmt.Errorf("%w: empty number", ErrEncoding)
	}
	return node.Number, nil
}

func quote(s string) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}

func newline(w io.Writer, es *EncState) error {
	if es.indent == "" {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
