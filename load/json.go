package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jtree/ir"
)

// decodeJSON walks the token stream rather than unmarshaling into maps so
// that object field order and the literal text of numbers survive.
func decodeJSON(d []byte, maxDepth int) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeValue(dec, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	tok, err := dec.Token()
	switch {
	case err == io.EOF:
		return node, nil
	case err != nil:
		return nil, decodeErr(err)
	default:
		return nil, fmt.Errorf("%w: unexpected %v after top-level value at offset %d", ErrDecode, tok, dec.InputOffset())
	}
}

func decodeValue(dec *json.Decoder, depth, maxDepth int) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, decodeErr(err)
	}
	switch x := tok.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return ir.FromNumber(string(x)), nil
	case json.Delim:
		if depth >= maxDepth {
			return nil, fmt.Errorf("%w: nesting exceeds %d at offset %d", ErrDecode, maxDepth, dec.InputOffset())
		}
		switch x {
		case '{':
			return decodeObject(dec, depth, maxDepth)
		case '[':
			return decodeArray(dec, depth, maxDepth)
		}
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrDecode, x, dec.InputOffset())
	default:
		return nil, fmt.Errorf("%w: unexpected token %T", ErrDecode, tok)
	}
}

func decodeObject(dec *json.Decoder, depth, maxDepth int) (*ir.Node, error) {
	res := ir.NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, decodeErr(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected object key, got %v", ErrDecode, tok)
		}
		val, err := decodeValue(dec, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		res.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, decodeErr(err)
	}
	return res, nil
}

func decodeArray(dec *json.Decoder, depth, maxDepth int) (*ir.Node, error) {
	res := ir.NewArray()
	for dec.More() {
		val, err := decodeValue(dec, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, decodeErr(err)
	}
	return res, nil
}

func decodeErr(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected end of input", ErrDecode)
	}
	return fmt.Errorf("%w: %w", ErrDecode, err)
}
