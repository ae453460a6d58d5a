package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
)

func noopRun(_ context.Context, _ io.Writer) error { return nil }

func demo(category, name string) Demo {
	return Demo{Key: Key{Category: category, Name: name}, Run: noopRun}
}

func TestRegisterAndLookupNormalizes(t *testing.T) {
	c := New()
	if err := c.Register(demo("Creational", "Builder")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, ok := c.Lookup(Key{Category: "creational", Name: "builder"}); !ok {
		t.Fatal("expected lowercase lookup to hit")
	}
	if _, ok := c.Lookup(Key{Category: "CREATIONAL", Name: "BUILDER"}); !ok {
		t.Fatal("expected case-insensitive lookup to hit")
	}
	if _, ok := c.Lookup(Key{Category: "structural", Name: "builder"}); ok {
		t.Fatal("wrong category must not hit")
	}
}

func TestRegisterDuplicateFails(t *testing.T) {
	c := New()
	if err := c.Register(demo("behavioral", "observer")); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := c.Register(demo("Behavioral", "OBSERVER"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestRegisterInvalidDemo(t *testing.T) {
	c := New()
	if err := c.Register(Demo{Key: Key{Name: "x"}, Run: noopRun}); err == nil {
		t.Fatal("empty category must fail")
	}
	if err := c.Register(Demo{Key: Key{Category: "structural", Name: "x"}}); err == nil {
		t.Fatal("nil run must fail")
	}
}

func TestSealBlocksRegistration(t *testing.T) {
	c := New()
	if err := c.Register(demo("structural", "proxy")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if !c.Seal() {
		t.Fatal("first Seal must report the transition")
	}
	if c.Seal() {
		t.Fatal("Seal is idempotent, second call must report false")
	}
	if !c.Sealed() {
		t.Fatal("catalog must be sealed")
	}

	if err := c.Register(demo("structural", "adapter")); !errors.Is(err, ErrSealed) {
		t.Fatalf("expected ErrSealed, got %v", err)
	}
	// Lookups siguen funcionando sellado.
	if _, ok := c.Lookup(Key{Category: "structural", Name: "proxy"}); !ok {
		t.Fatal("lookup must still work after seal")
	}
}

func TestLookupName(t *testing.T) {
	c := New()
	for _, d := range []Demo{
		demo("creational", "builder"),
		demo("structural", "proxy"),
		demo("behavioral", "proxy"), // nombre repetido en otra categoría
	} {
		if err := c.Register(d); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	if _, ok := c.LookupName("builder"); !ok {
		t.Fatal("unique name must resolve")
	}
	if _, ok := c.LookupName("proxy"); ok {
		t.Fatal("ambiguous name must not resolve")
	}
	if _, ok := c.LookupName("missing"); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestRunUnknown(t *testing.T) {
	c := New()
	err := c.Run(context.Background(), Key{Category: "creational", Name: "ghost"}, io.Discard)
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestRunWritesToGivenWriter(t *testing.T) {
	c := New()
	d := Demo{
		Key: Key{Category: "structural", Name: "echo"},
		Run: func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "echo output")
			return err
		},
	}
	if err := c.Register(d); err != nil {
		t.Fatalf("register: %v", err)
	}

	var buf bytes.Buffer
	if err := c.Run(context.Background(), Key{Category: "STRUCTURAL", Name: "Echo"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := buf.String(); got != "echo output" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEntriesDeterministicOrder(t *testing.T) {
	c := New()
	for _, d := range []Demo{
		demo("structural", "proxy"),
		demo("behavioral", "visitor"),
		demo("behavioral", "chain"),
		demo("creational", "builder"),
	} {
		if err := c.Register(d); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	want := []string{"behavioral/chain", "behavioral/visitor", "creational/builder", "structural/proxy"}
	entries := c.Entries()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, d := range entries {
		if d.Key.String() != want[i] {
			t.Fatalf("entry %d: expected %s, got %s", i, want[i], d.Key)
		}
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("creational/builder")
	if err != nil || k.Category != "creational" || k.Name != "builder" {
		t.Fatalf("unexpected: %v %v", k, err)
	}
	k, err = ParseKey("builder")
	if err != nil || k.Category != "" || k.Name != "builder" {
		t.Fatalf("bare name: %v %v", k, err)
	}
	if _, err := ParseKey(""); err == nil {
		t.Fatal("empty key must fail")
	}
	if _, err := ParseKey("creational/"); err == nil {
		t.Fatal("malformed key must fail")
	}
}

func TestConcurrentRegisterAndLookup(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Register(demo("behavioral", fmt.Sprintf("demo-%d", i)))
			c.Lookup(Key{Category: "behavioral", Name: "demo-0"})
		}(i)
	}
	wg.Wait()
	if c.Len() != 50 {
		t.Fatalf("expected 50 demos, got %d", c.Len())
	}
}
