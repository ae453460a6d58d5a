package builder

import (
	"bytes"
	"context"
	"testing"
)

func TestFluentBuilderMarkup(t *testing.T) {
	page := NewElement(Body, "").
		AddChild(H1, "Title").
		AddChild(P, "text").
		Build()

	want := "<body>\n<h1>Title</h1>\n<p>text</p>\n</body>\n"
	if got := page.String(); got != want {
		t.Fatalf("unexpected markup:\n got: %q\nwant: %q", got, want)
	}
}

func TestRunOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "<body>\n" +
		"<h1>Title of the Page</h1>\n" +
		"<h2>Subtitle A</h2>\n" +
		"<p>Lorem ipsum dolor sit amet, ...</p>\n" +
		"<h2>Subtitle B</h2>\n" +
		"<p>... consectetur adipiscing elit.</p>\n" +
		"</body>\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, want)
	}
}
