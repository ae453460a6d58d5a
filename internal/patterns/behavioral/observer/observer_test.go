package observer

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestDetachedObserverStopsReceiving(t *testing.T) {
	var buf bytes.Buffer
	subject := NewSubject(&buf)
	o1 := NewObserver(&buf, 1)
	o2 := NewObserver(&buf, 2)
	subject.Attach(o1)
	subject.Attach(o2)

	subject.SomeBusinessLogic("first")
	subject.Detach(o2)
	subject.SomeBusinessLogic("second")

	out := buf.String()
	if got := strings.Count(out, `Observer "2":`); got != 1 {
		t.Fatalf("observer 2 must only see the first message, got %d updates:\n%s", got, out)
	}
	if got := strings.Count(out, `Observer "1":`); got != 2 {
		t.Fatalf("observer 1 must see both messages, got %d updates:\n%s", got, out)
	}
	if !strings.Contains(out, "Subject: Notifying 1 observers...") {
		t.Fatalf("missing post-detach notify line:\n%s", out)
	}
}

func TestRunOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`Hi, I'm the Observer "1".`,
		"Subject: Attached an observer (3 in the list).",
		`Observer "3": a new message is available --> The weather is nice today`,
		"Subject: Detached an observer (2 left).",
		`Observer "1": a new message is available --> It's going to rain tomorrow`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, `Observer "2": a new message is available --> It's going to rain`) {
		t.Fatalf("detached observer received the second message:\n%s", out)
	}
}
