// Package memento: guarda y restaura el estado de un objeto sin romper su
// encapsulamiento. El caretaker mantiene la pila de undo.
package memento

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Memento expone sólo metadata; el estado completo lo lee el Originator.
type Memento interface {
	Name() string
	Date() time.Time
	state() string
}

type concreteMemento struct {
	snapshot string
	date     time.Time
}

func (m concreteMemento) Name() string {
	return fmt.Sprintf("%s / (%.9s...)", m.date.Format("2006-01-02 15:04:05"), m.snapshot)
}

func (m concreteMemento) Date() time.Time { return m.date }
func (m concreteMemento) state() string   { return m.snapshot }

// Originator tiene estado que cambia con su "business logic"; sabe fotografiar
// y restaurar ese estado.
type Originator struct {
	out   io.Writer
	rng   *rand.Rand
	now   func() time.Time
	state string
}

// NewOriginator usa una semilla fija y un reloj inyectable para que el demo
// sea reproducible.
func NewOriginator(out io.Writer, state string, seed int64, now func() time.Time) *Originator {
	if now == nil {
		now = time.Now
	}
	o := &Originator{
		out:   out,
		rng:   rand.New(rand.NewSource(seed)),
		now:   now,
		state: state,
	}
	fmt.Fprintf(out, "Originator: My initial state is: %s\n", state)
	return o
}

const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func (o *Originator) randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanum[o.rng.Intn(len(alphanum))]
	}
	return string(b)
}

// DoSomething muta el estado; el cliente debería haber hecho backup antes.
func (o *Originator) DoSomething() {
	fmt.Fprintln(o.out, "Originator: I'm doing something important.")
	o.state = o.randomString(30)
	fmt.Fprintf(o.out, "Originator: and my state has changed to: %s\n", o.state)
}

// Save fotografía el estado actual.
func (o *Originator) Save() Memento {
	return concreteMemento{snapshot: o.state, date: o.now()}
}

// Restore vuelve al estado del memento.
func (o *Originator) Restore(m Memento) {
	o.state = m.state()
	fmt.Fprintf(o.out, "Originator: My state has changed to: %s\n", o.state)
}

// State expone el estado para verificación; los mementos no lo necesitan.
func (o *Originator) State() string { return o.state }

// Caretaker administra la pila de mementos sin mirar su contenido.
type Caretaker struct {
	out        io.Writer
	originator *Originator
	mementos   []Memento
}

func NewCaretaker(out io.Writer, originator *Originator) *Caretaker {
	return &Caretaker{out: out, originator: originator}
}

// Backup apila una foto del estado actual.
func (c *Caretaker) Backup() {
	fmt.Fprintln(c.out, "\nCaretaker: Saving Originator's state...")
	c.mementos = append(c.mementos, c.originator.Save())
}

// Undo restaura la última foto; sin fotos es un no-op.
func (c *Caretaker) Undo() {
	if len(c.mementos) == 0 {
		return
	}
	last := c.mementos[len(c.mementos)-1]
	c.mementos = c.mementos[:len(c.mementos)-1]
	fmt.Fprintf(c.out, "Caretaker: Restoring state to: %s\n", last.Name())
	c.originator.Restore(last)
}

// ShowHistory lista las fotos guardadas.
func (c *Caretaker) ShowHistory() {
	fmt.Fprintln(c.out, "Caretaker: Here's the list of mementos:")
	for _, m := range c.mementos {
		fmt.Fprintln(c.out, m.Name())
	}
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	originator := NewOriginator(w, "Super-duper-super-puper-super.", 42, nil)
	caretaker := NewCaretaker(w, originator)

	caretaker.Backup()
	originator.DoSomething()
	caretaker.Backup()
	originator.DoSomething()
	caretaker.Backup()
	originator.DoSomething()

	fmt.Fprintln(w)
	caretaker.ShowHistory()

	fmt.Fprintln(w, "\nClient: Now, let's rollback!")
	caretaker.Undo()
	fmt.Fprintln(w, "\nClient: Once more!")
	caretaker.Undo()
	return nil
}
