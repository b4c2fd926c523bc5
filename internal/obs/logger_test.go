package obs

import (
	"bytes"
	"log"
	"testing"
)

func TestFormat(t *testing.T) {
	got := Format(Warn, "unknown method", "token", "BREW", "n", 2)
	want := `level=WARN msg="unknown method" token=BREW n=2`
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
	if got := Format(Info, "x", "dangling"); got != "level=INFO msg=x dangling=(MISSING)" {
		t.Fatalf("Format = %q", got)
	}
	if got := Format(Debug, "", "v", "a b"); got != `level=DEBUG msg="" v="a b"` {
		t.Fatalf("Format = %q", got)
	}
}

func TestStdLogger_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := StdLogger{L: log.New(&buf, "", 0), Min: Warn}
	l.Log(Info, "dropped")
	if buf.Len() != 0 {
		t.Fatalf("info logged below min: %q", buf.String())
	}
	l.Log(Error, "kept", "k", "v")
	if got := buf.String(); got != "level=ERROR msg=kept k=v\n" {
		t.Fatalf("output = %q", got)
	}
	StdLogger{}.Log(Error, "no logger")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": Debug, "INFO": Info, "": Info, "warning": Warn, " Error ": Error}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if Level(9).String() != "UNKNOWN" {
		t.Fatalf("String() = %q", Level(9).String())
	}
}
