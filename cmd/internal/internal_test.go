package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfigDefaults(t *testing.T) {
	c, err := ReadConfig("")
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !c.Unit() {
		t.Fatalf("expected unit weights; got %+v", c)
	}
}

func TestReadConfigJSONString(t *testing.T) {
	c, err := ReadConfig(`{"ins":2,"del":3,"sub":4}`)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if c.Ins != 2 || c.Del != 3 || c.Sub != 4 {
		t.Fatalf("bad config: %+v", c)
	}
	if c.Unit() {
		t.Fatalf("expected non-unit weights; got %+v", c)
	}
}

func TestReadConfigTOML(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.toml")
	data := "ins = 1\ndel = 1\nsub = 2\n"
	if err := os.WriteFile(name, []byte(data), 0666); err != nil {
		t.Fatalf("got error: %v", err)
	}
	c, err := ReadConfig(name)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if c.Ins != 1 || c.Del != 1 || c.Sub != 2 {
		t.Fatalf("bad config: %+v", c)
	}
	w := c.Weights()
	if w.Ins != 1 || w.Del != 1 || w.Sub != 2 {
		t.Fatalf("bad weights: %+v", w)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "nosuch.toml")); err == nil {
		t.Fatalf("expected an error")
	}
}
