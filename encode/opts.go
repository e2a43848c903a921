package encode

import "github.com/signadot/jtree/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeIndent spreads JSON output over lines, indenting each level with
// indent.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}
