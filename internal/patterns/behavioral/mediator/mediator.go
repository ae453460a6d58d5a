// Package mediator: los componentes no se hablan entre sí, notifican a un
// mediador que decide a quién disparar.
package mediator

import (
	"context"
	"fmt"
	"io"
)

// Mediator recibe notificaciones de los componentes.
type Mediator interface {
	Notify(sender any, event string)
}

// Component1 hace A y B; avisa al mediador en cada operación.
type Component1 struct {
	out      io.Writer
	mediator Mediator
}

func (c *Component1) DoA() {
	fmt.Fprintln(c.out, "Component 1 does A.")
	c.mediator.Notify(c, "A")
}

func (c *Component1) DoB() {
	fmt.Fprintln(c.out, "Component 1 does B.")
	c.mediator.Notify(c, "B")
}

// Component2 hace C y D.
type Component2 struct {
	out      io.Writer
	mediator Mediator
}

func (c *Component2) DoC() {
	fmt.Fprintln(c.out, "Component 2 does C.")
	c.mediator.Notify(c, "C")
}

func (c *Component2) DoD() {
	fmt.Fprintln(c.out, "Component 2 does D.")
	c.mediator.Notify(c, "D")
}

// ConcreteMediator conoce a ambos componentes y coordina sus reacciones.
type ConcreteMediator struct {
	out io.Writer
	c1  *Component1
	c2  *Component2
}

// New arma el mediador y cablea los componentes contra él.
func New(out io.Writer) *ConcreteMediator {
	m := &ConcreteMediator{out: out}
	m.c1 = &Component1{out: out, mediator: m}
	m.c2 = &Component2{out: out, mediator: m}
	return m
}

func (m *ConcreteMediator) Notify(_ any, event string) {
	switch event {
	case "A":
		fmt.Fprintln(m.out, "Mediator reacts on A and triggers following operations:")
		m.c2.DoC()
	case "D":
		fmt.Fprintln(m.out, "Mediator reacts on D and triggers following operations:")
		m.c1.DoB()
		m.c2.DoC()
	}
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	m := New(w)

	fmt.Fprintln(w, "Client triggers operation A.")
	m.c1.DoA()

	fmt.Fprintln(w, "Client triggers operation D.")
	m.c2.DoD()
	return nil
}
