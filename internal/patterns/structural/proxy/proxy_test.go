package proxy

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestProxyCachesRealServiceResults(t *testing.T) {
	svc := &realService{}
	p := NewCachingProxy(svc, time.Minute, io.Discard)

	first, err := p.Fetch("user:42")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	second, err := p.Fetch("user:42")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if first != second {
		t.Fatalf("cache hit must return the cached payload: %q vs %q", first, second)
	}
	if svc.hits != 1 {
		t.Fatalf("real service must be hit once, got %d", svc.hits)
	}

	if _, err := p.Fetch("user:7"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if svc.hits != 2 {
		t.Fatalf("distinct key must miss, got %d hits", svc.hits)
	}
}

func TestRunOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "cache miss"); got != 2 {
		t.Fatalf("expected 2 misses, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "cache hit"); got != 2 {
		t.Fatalf("expected 2 hits, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "Real service was hit 2 times for 4 client calls") {
		t.Fatalf("missing summary line:\n%s", out)
	}
}
