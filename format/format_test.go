package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  error
	}{
		{"json", JSONFormat, nil},
		{"J", JSONFormat, nil},
		{"yaml", YAMLFormat, nil},
		{"yml", YAMLFormat, nil},
		{"toml", 0, ErrBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseFormat(%q) error = %v, want %v", tt.in, err, tt.err)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a/b.json", JSONFormat, true},
		{"conf.YAML", YAMLFormat, true},
		{"conf.yml", YAMLFormat, true},
		{"Makefile", JSONFormat, false},
		{"x.toml", JSONFormat, false},
	}
	for _, tt := range tests {
		got, ok := FromPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromPath(%q) = %s, %v, want %s, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("round trip of %s gave %s", f, g)
		}
		if f.Suffix() == "" {
			t.Errorf("%s has no suffix", f)
		}
	}
}
