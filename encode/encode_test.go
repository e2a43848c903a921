package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/signadot/jtree/format"
	"github.com/signadot/jtree/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "z", Val: ir.FromString("a<b>&\"c\"")},
		{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromFloat(2),
			ir.FromFloat(2.5),
			ir.FromNumber("1e400"),
			ir.FromBool(false),
			ir.Null(),
		})},
		{Key: "o", Val: ir.NewObject()},
	})
}

func TestEncodeJSON(t *testing.T) {
	got := MustString(sample())
	want := `{"z":"a<b>&\"c\"","a":[1,2.0,2.5,1e400,false,null],"o":{}}`
	if got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.NewObject()})},
		{Key: "b", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "c", Val: ir.NewArray()}})},
	})
	got := MustString(node, EncodeIndent("  "))
	want := `{
  "a": [
    1,
    {}
  ],
  "b": {
    "c": []
  }
}`
	if got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromString("x")},
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
	})
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(buf.Bytes(), &v, yaml.UseOrderedMap()); err != nil {
		t.Fatalf("output %q does not decode: %v", buf.String(), err)
	}
	back, err := ir.FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("Encode(yaml) = %q does not decode to the input", buf.String())
	}
}

func TestEncodeJSONIsEquivalent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "k", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "n", Val: ir.FromInt(-3)}})},
		{Key: "s", Val: ir.FromString("é\n")},
	})
	got := []byte(MustString(node))
	if !jsonpatch.Equal(got, []byte(`{"s":"é\n","k":{"n":-3}}`)) {
		t.Errorf("Encode() = %s is not equivalent", got)
	}
}

func TestEncodeColors(t *testing.T) {
	mark := func(p string) func(string, ...any) string {
		return func(v string, _ ...any) string { return p + v }
	}
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.StringType, Attr: ValueColor}: mark("S"),
			{Type: ir.ObjectType, Attr: FieldColor}: mark("F"),
		},
	}
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("v")}})
	got := MustString(node, EncodeColors(colors))
	if want := `{F"k":S"v"}`; got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
	if NewColors().Get(ir.StringType, FieldColor) == nil {
		t.Errorf("NewColors() has no default")
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
	}{
		{"nil", nil},
		{"nan", ir.FromFloat(math.NaN())},
		{"inf", ir.FromSlice([]*ir.Node{ir.FromFloat(math.Inf(1))})},
		{"empty number", &ir.Node{Type: ir.NumberType}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(tt.node, bytes.NewBuffer(nil))
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("Encode() error = %v, want %v", err, ErrEncoding)
			}
		})
	}
}
