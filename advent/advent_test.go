package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/cespare/advent/stones"
	"github.com/kr/pretty"
)

func TestCompareNames(t *testing.T) {
	names := []string{"11i", "9", "11", "2b", "2a", "10"}
	slices.SortFunc(names, compareNames)
	want := []string{"2a", "2b", "9", "10", "11", "11i"}
	if diff := pretty.Diff(names, want); len(diff) > 0 {
		t.Errorf("got %v; want %v", names, want)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"11", "11i"} {
		if _, ok := solutions[name]; !ok {
			t.Errorf("solution %q not registered", name)
		}
	}
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestInputPath(t *testing.T) {
	conf, err := loadConfig(writeFile(t, "advent.ini", "[day11]\ninput = /tmp/11.txt\n"), true)
	if err != nil {
		t.Fatal(err)
	}
	empty, err := loadConfig("", false)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		conf *config
		day  string
		arg  string
		want string
	}{
		{conf, "11", "", "/tmp/11.txt"},
		{conf, "11", "x.txt", "x.txt"},
		{conf, "12", "", defaultInput},
		{empty, "11", "", defaultInput},
	} {
		if got := tt.conf.inputPath(tt.day, tt.arg); got != tt.want {
			t.Errorf("inputPath(%q, %q): got %q; want %q", tt.day, tt.arg, got, tt.want)
		}
	}
}

func TestLoadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.ini")
	conf, err := loadConfig(missing, false)
	if err != nil {
		t.Fatalf("optional missing config: %s", err)
	}
	if got := conf.inputPath("11", ""); got != defaultInput {
		t.Errorf("got %q; want %q", got, defaultInput)
	}
	if _, err := loadConfig(missing, true); err == nil {
		t.Error("required missing config: got nil error")
	}
}

func TestReadStones(t *testing.T) {
	row, err := readStones(writeFile(t, "input", "125 17\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(row, []uint64{125, 17}); len(diff) > 0 {
		t.Errorf("got %v; want [125 17]", row)
	}

	if _, err := readStones(writeFile(t, "input", "125 x\n")); err == nil {
		t.Error("bad token: got nil error")
	}
	if _, err := readStones(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v; want os.ErrNotExist", err)
	}
}

func TestEvalLine(t *testing.T) {
	c := stones.NewCounter()
	for _, tt := range []struct {
		line    string
		want    string
		wantErr bool
	}{
		{"125 17", "55312\n65601038650482\n", false},
		{"   ", "", false},
		{"17 125", "55312\n65601038650482\n", false},
		{"1 two", "", true},
		{"1000000000000000000", "", true},
	} {
		var buf bytes.Buffer
		err := evalLine(&buf, c, tt.line)
		if (err != nil) != tt.wantErr {
			t.Errorf("evalLine(%q): got err %v; want error: %t", tt.line, err, tt.wantErr)
			continue
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("evalLine(%q): got %q; want %q", tt.line, got, tt.want)
		}
	}
}

func TestPrintTotals(t *testing.T) {
	var buf bytes.Buffer
	if err := printTotals(&buf, stones.NewCounter(), []uint64{0}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines (%q); want 2", len(lines), buf.String())
	}
}
