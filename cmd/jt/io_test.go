package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/jtree/format"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadMerged(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json": `{"a": {"x": 1}, "l": [1]}`,
		"b.yaml": "a:\n  y: 2\nl:\n  - 2\n",
	})
	cfg := &MainConfig{}
	doc, err := loadMerged(cfg, strings.NewReader(""), []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.yaml"),
	})
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := output(cfg, buf, doc); err != nil {
		t.Fatal(err)
	}
	want := `{"a":{"x":1,"y":2},"l":[1,2]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestLoadDocsStdin(t *testing.T) {
	cfg := &MainConfig{}
	docs, err := loadDocs(cfg, strings.NewReader(`[1, 2]`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Len() != 2 {
		t.Fatalf("unexpected docs %v", docs)
	}
	yaml := format.YAMLFormat
	cfg.InFormat = &yaml
	docs, err = loadDocs(cfg, strings.NewReader("a: b\n"), []string{"-"})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := docs[0].Get("a"); !ok || v.String != "b" {
		t.Errorf("unexpected doc %v", docs[0])
	}
}

func TestLoadOneRejectsFiles(t *testing.T) {
	if _, err := loadOne(&MainConfig{}, strings.NewReader(""), []string{"a", "b"}); err == nil {
		t.Error("expected error for two files")
	}
}

func TestOutputFormats(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.json": `{"k": [true]}`})
	cfg := &MainConfig{Pretty: true}
	doc, err := loadMerged(cfg, strings.NewReader(""), []string{filepath.Join(dir, "a.json")})
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := output(cfg, buf, doc); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"k\": [\n    true\n  ]\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	cfg = &MainConfig{Y: true}
	buf.Reset()
	if err := output(cfg, buf, doc); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "k:") {
		t.Errorf("got %q, want yaml", got)
	}
}
