// Package observer: suscripción a eventos; el sujeto notifica a todos los
// observadores colgados.
package observer

import (
	"context"
	"fmt"
	"io"
)

// Observer recibe las actualizaciones del sujeto.
type Observer interface {
	Update(message string)
}

// Subject mantiene la lista de suscriptores y los notifica en orden de alta.
type Subject struct {
	out       io.Writer
	observers []Observer
	message   string
}

func NewSubject(out io.Writer) *Subject { return &Subject{out: out} }

// Attach suscribe un observador.
func (s *Subject) Attach(o Observer) {
	s.observers = append(s.observers, o)
	fmt.Fprintf(s.out, "Subject: Attached an observer (%d in the list).\n", len(s.observers))
}

// Detach desuscribe la primera ocurrencia del observador.
func (s *Subject) Detach(o Observer) {
	for i, cur := range s.observers {
		if cur == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			fmt.Fprintf(s.out, "Subject: Detached an observer (%d left).\n", len(s.observers))
			return
		}
	}
}

// Notify empuja el mensaje vigente a todos los suscriptores.
func (s *Subject) Notify() {
	fmt.Fprintf(s.out, "Subject: Notifying %d observers...\n", len(s.observers))
	for _, o := range s.observers {
		o.Update(s.message)
	}
}

// SomeBusinessLogic cambia el estado y dispara la notificación.
func (s *Subject) SomeBusinessLogic(message string) {
	fmt.Fprintln(s.out, "Subject: I'm doing something important.")
	s.message = message
	s.Notify()
}

// ConcreteObserver imprime lo que recibe, identificado por número.
type ConcreteObserver struct {
	out    io.Writer
	number int
}

func NewObserver(out io.Writer, number int) *ConcreteObserver {
	fmt.Fprintf(out, "Hi, I'm the Observer \"%d\".\n", number)
	return &ConcreteObserver{out: out, number: number}
}

func (o *ConcreteObserver) Update(message string) {
	fmt.Fprintf(o.out, "Observer \"%d\": a new message is available --> %s\n", o.number, message)
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	subject := NewSubject(w)

	o1 := NewObserver(w, 1)
	o2 := NewObserver(w, 2)
	o3 := NewObserver(w, 3)
	subject.Attach(o1)
	subject.Attach(o2)
	subject.Attach(o3)

	subject.SomeBusinessLogic("The weather is nice today")

	subject.Detach(o2)
	subject.SomeBusinessLogic("It's going to rain tomorrow")
	return nil
}
