// Package encode writes ir.Node trees as JSON or YAML.
//
// JSON output is compact, keeps object field order and keeps the int/float
// distinction of numbers (floats with integral values are written with a
// trailing ".0"). YAML output goes through goccy/go-yaml.
//
// Colors may be applied to JSON output with EncodeColors(NewColors()).
package encode
