// Package state: el contexto delega su comportamiento en el estado vigente y
// los estados deciden las transiciones.
package state

import (
	"context"
	"fmt"
	"io"
)

// State maneja los pedidos del contexto y puede pedir una transición.
type State interface {
	Name() string
	Handle1(ctx *Context)
	Handle2(ctx *Context)
}

// Context mantiene una referencia al estado vigente.
type Context struct {
	out   io.Writer
	state State
}

func NewContext(out io.Writer, initial State) *Context {
	c := &Context{out: out}
	c.TransitionTo(initial)
	return c
}

// TransitionTo cambia el estado en caliente.
func (c *Context) TransitionTo(s State) {
	fmt.Fprintf(c.out, "Context: Transition to %s.\n", s.Name())
	c.state = s
}

func (c *Context) Request1() { c.state.Handle1(c) }
func (c *Context) Request2() { c.state.Handle2(c) }

// ConcreteStateA atiende request1 y transiciona a B.
type ConcreteStateA struct{}

func (ConcreteStateA) Name() string { return "ConcreteStateA" }

func (ConcreteStateA) Handle1(c *Context) {
	fmt.Fprintln(c.out, "ConcreteStateA handles request1.")
	fmt.Fprintln(c.out, "ConcreteStateA wants to change the state of the context.")
	c.TransitionTo(ConcreteStateB{})
}

func (ConcreteStateA) Handle2(c *Context) {
	fmt.Fprintln(c.out, "ConcreteStateA handles request2.")
}

// ConcreteStateB atiende request2 y vuelve a A.
type ConcreteStateB struct{}

func (ConcreteStateB) Name() string { return "ConcreteStateB" }

func (ConcreteStateB) Handle1(c *Context) {
	fmt.Fprintln(c.out, "ConcreteStateB handles request1.")
}

func (ConcreteStateB) Handle2(c *Context) {
	fmt.Fprintln(c.out, "ConcreteStateB handles request2.")
	fmt.Fprintln(c.out, "ConcreteStateB wants to change the state of the context.")
	c.TransitionTo(ConcreteStateA{})
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	c := NewContext(w, ConcreteStateA{})
	c.Request1()
	c.Request2()
	return nil
}
