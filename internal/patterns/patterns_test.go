package patterns

import (
	"context"
	"io"
	"testing"

	"github.com/dropDatabas3/patrones/internal/catalog"
)

func TestRegisterAllIsCompleteAndUnique(t *testing.T) {
	c := catalog.New()
	if err := RegisterAll(c); err != nil {
		t.Fatalf("register all: %v", err)
	}
	if got, want := c.Len(), len(All()); got != want {
		t.Fatalf("expected %d demos registered, got %d", want, got)
	}

	byCategory := map[string]int{}
	for _, d := range c.Entries() {
		byCategory[d.Key.Category]++
		if d.Doc == "" {
			t.Fatalf("demo %s sin doc", d.Key)
		}
	}
	if byCategory[catalog.Creational] != 4 {
		t.Fatalf("creational: %d", byCategory[catalog.Creational])
	}
	if byCategory[catalog.Structural] != 5 {
		t.Fatalf("structural: %d", byCategory[catalog.Structural])
	}
	if byCategory[catalog.Behavioral] != 10 {
		t.Fatalf("behavioral: %d", byCategory[catalog.Behavioral])
	}
}

func TestRegisterAllTwiceFails(t *testing.T) {
	c := catalog.New()
	if err := RegisterAll(c); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := RegisterAll(c); err == nil {
		t.Fatal("second register must fail with duplicates")
	}
}

// Smoke test: todos los demos corren sin error.
func TestEveryDemoRuns(t *testing.T) {
	for _, d := range All() {
		if err := d.Run(context.Background(), io.Discard); err != nil {
			t.Fatalf("demo %s: %v", d.Key, err)
		}
	}
}
