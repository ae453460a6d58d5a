package strategy

import (
	"bytes"
	"context"
	"reflect"
	"testing"
)

func TestStrategiesDoNotMutateInput(t *testing.T) {
	data := []string{"b", "a", "c"}

	if got := (NormalStrategy{}).DoAlgorithm(data); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("normal: %v", got)
	}
	if got := (ReverseStrategy{}).DoAlgorithm(data); !reflect.DeepEqual(got, []string{"c", "b", "a"}) {
		t.Fatalf("reverse: %v", got)
	}
	if !reflect.DeepEqual(data, []string{"b", "a", "c"}) {
		t.Fatalf("input mutated: %v", data)
	}
}

func TestRunOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "Client: Strategy is set to normal sorting.\n" +
		"Context: Sorting data using the strategy (not sure how it'll do it)\n" +
		"a,b,c,d,e\n" +
		"Client: Strategy is set to reverse sorting.\n" +
		"Context: Sorting data using the strategy (not sure how it'll do it)\n" +
		"e,d,c,b,a\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, want)
	}
}
