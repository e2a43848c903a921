package load

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/jtree/encode"
	"github.com/signadot/jtree/format"
	"github.com/signadot/jtree/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

func TestLoadStringKeepsOrderAndNumbers(t *testing.T) {
	node, err := LoadString(`{"z": 1, "a": [1.0, 2, -3e2, "x"], "m": {"t": true, "n": null}}`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, node.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "z", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromFloat(1),
			ir.FromInt(2),
			ir.FromFloat(-300),
			ir.FromString("x"),
		})},
		{Key: "m", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "t", Val: ir.FromBool(true)},
			{Key: "n", Val: ir.Null()},
		})},
	})
	if !ir.Equal(node, want) {
		t.Errorf("LoadString() = %s, want %s", encode.MustString(node), encode.MustString(want))
	}
}

func TestLoadDuplicateKeyReassigns(t *testing.T) {
	node, err := LoadString(`{"a": 1, "b": 2, "a": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != `{"a":3,"b":2}` {
		t.Errorf("LoadString() = %s", got)
	}
}

func TestLoadScalarsAndArrays(t *testing.T) {
	tests := []string{`"s"`, `1`, `null`, `true`, `[]`, `[[], {}]`, `{}`}
	for _, in := range tests {
		node, err := LoadString(in)
		if err != nil {
			t.Errorf("LoadString(%s) error %v", in, err)
			continue
		}
		if got := encode.MustString(node); !jsonpatch.Equal([]byte(got), []byte(in)) && got != in {
			t.Errorf("LoadString(%s) = %s", in, got)
		}
	}
}

func TestLoadDecodeErrors(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`{"a" 1}`,
		`{"a": 1,}`,
		`[1 2]`,
		`{} {}`,
		`{}}`,
		`nope`,
		`{1: 2}`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := LoadString(in)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("LoadString(%q) error = %v, want %v", in, err, ErrDecode)
			}
		})
	}
}

func TestLoadMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	if _, err := LoadString(deep, LoadMaxDepth(5)); err != nil {
		t.Errorf("depth 5 with limit 5: %v", err)
	}
	if _, err := LoadString(deep, LoadMaxDepth(4)); !errors.Is(err, ErrDecode) {
		t.Errorf("depth 5 with limit 4: error = %v, want %v", err, ErrDecode)
	}
	yml := "a:\n  b:\n    c: 1\n"
	if _, err := LoadString(yml, LoadFormat(format.YAMLFormat), LoadMaxDepth(3)); err != nil {
		t.Errorf("yaml depth 3 with limit 3: %v", err)
	}
	if _, err := LoadString(yml, LoadFormat(format.YAMLFormat), LoadMaxDepth(2)); !errors.Is(err, ErrDecode) {
		t.Errorf("yaml depth 3 with limit 2: error = %v, want %v", err, ErrDecode)
	}
}

func TestLoadYAML(t *testing.T) {
	node, err := LoadString("b: x\na:\n  - 1\n  - 2.5\nc: null\n", LoadFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromString("x")},
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2.5)})},
		{Key: "c", Val: ir.Null()},
	})
	if !ir.Equal(node, want) {
		t.Errorf("LoadString(yaml) = %s, want %s", encode.MustString(node), encode.MustString(want))
	}
	if _, err := LoadString("a: [1", LoadFormat(format.YAMLFormat)); !errors.Is(err, ErrDecode) {
		t.Errorf("bad yaml error = %v, want %v", err, ErrDecode)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	jPath := filepath.Join(dir, "a.json")
	if err := os.WriteFile(jPath, []byte(`{"foo": {"bar": "baz"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	yPath := filepath.Join(dir, "a.yml")
	if err := os.WriteFile(yPath, []byte("foo:\n  bar: baz\n"), 0644); err != nil {
		t.Fatal(err)
	}
	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte(`{"foo":`), 0644); err != nil {
		t.Fatal(err)
	}

	jNode, err := LoadFile(jPath)
	if err != nil {
		t.Fatal(err)
	}
	yNode, err := LoadFile(yPath)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(jNode, yNode) {
		t.Errorf("json %s != yaml %s", encode.MustString(jNode), encode.MustString(yNode))
	}

	if _, err := LoadFile(badPath); !errors.Is(err, ErrDecode) {
		t.Errorf("LoadFile(bad) error = %v, want %v", err, ErrDecode)
	}
	if _, err := LoadFile(dir); !errors.Is(err, ErrNotAFile) {
		t.Errorf("LoadFile(dir) error = %v, want %v", err, ErrNotAFile)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, ErrNotAFile) {
		t.Errorf("LoadFile(missing) error = %v, want %v", err, ErrNotAFile)
	}
}

func TestLoadReader(t *testing.T) {
	node, err := LoadReader(strings.NewReader(`["a"]`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ArrayType || node.Len() != 1 {
		t.Errorf("LoadReader() = %s", encode.MustString(node))
	}
}
