package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		name   string
		exp    Level
		expErr bool
	}
	specs := []spec{
		spec{"debug", Debug, false},
		spec{"INFO", Info, false},
		spec{"Notice", Notice, false},
		spec{"warning", Warning, false},
		spec{"error", Error, false},
		spec{"verbose", Notice, true},
	}

	for index, s := range specs {
		level, err := ParseLevel(s.name)
		if s.expErr {
			if err == nil {
				t.Fatalf("[spec %d] expected an error", index)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %s; got %s", index, s.exp, level)
		}
		if level.String() != strings.ToLower(s.name) {
			t.Fatalf("[spec %d] expected level name %q; got %q", index, strings.ToLower(s.name), level.String())
		}
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	origLevel := GetLevel()
	defer func() {
		SetLevel(origLevel)
	}()

	var buf bytes.Buffer
	SetLevel(Warning)
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("log test")
	logger.Notice("hidden notice")
	logger.Warning("visible warning")

	if GetLevel() != Warning {
		t.Fatalf("expected level to stay at warning; got %s", GetLevel())
	}
	if out := buf.String(); strings.Contains(out, "hidden notice") || !strings.Contains(out, "visible warning") {
		t.Fatalf("expected only the warning to be logged; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("visible %s", "debug")
	if !strings.Contains(buf.String(), "visible debug") {
		t.Fatalf("expected debug output after raising verbosity; got %q", buf.String())
	}
}

func TestSetLevelIgnoresUnknown(t *testing.T) {
	origLevel := GetLevel()
	defer SetLevel(origLevel)

	SetLevel(Info)
	SetLevel(Level(42))
	if GetLevel() != Info {
		t.Fatalf("expected unknown level to be ignored; got %s", GetLevel())
	}
}
