package singleton

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
)

var recordRE = regexp.MustCompile(`(?m)^(\d+)\t\[([A-Z]+)\]$`)

func TestRunAcceptsThreeOfFourMessages(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "accepted messages: 3") {
		t.Fatalf("expected three accepted messages:\n%s", out)
	}
	if strings.Contains(out, "development check") {
		t.Fatalf("debug message must be dropped below the info threshold:\n%s", out)
	}

	// Los tres registros aceptados llevan contadores 1..3 en orden de
	// emisión, sea cual sea la goroutine que ganó cada turno.
	matches := recordRE.FindAllStringSubmatch(out, -1)
	if len(matches) != 3 {
		t.Fatalf("expected 3 log records, got %d:\n%s", len(matches), out)
	}
	seen := map[string]bool{}
	for i, m := range matches {
		if want := byte('1' + i); m[1] != string(want) {
			t.Fatalf("record %d has counter %s", i, m[1])
		}
		seen[m[2]] = true
	}
	for _, level := range []string{"INFO", "WARNING", "ERROR"} {
		if !seen[level] {
			t.Fatalf("missing %s record:\n%s", level, out)
		}
	}
}

func TestRunReportsSingleSharedInstance(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "all callers observe the same instance: true") {
		t.Fatalf("concurrent accessors saw different instances:\n%s", buf.String())
	}
}
