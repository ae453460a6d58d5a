// Package visitor: operaciones nuevas sobre una jerarquía estable de
// componentes, vía double dispatch.
package visitor

import (
	"context"
	"fmt"
	"io"
)

// Visitor declara una visita por cada componente concreto.
type Visitor interface {
	VisitConcreteComponentA(c *ConcreteComponentA)
	VisitConcreteComponentB(c *ConcreteComponentB)
}

// Component acepta cualquier visitante.
type Component interface {
	Accept(v Visitor)
}

// ConcreteComponentA tiene un método exclusivo que sólo los visitantes que
// lo conocen pueden aprovechar.
type ConcreteComponentA struct{}

func (c *ConcreteComponentA) Accept(v Visitor) { v.VisitConcreteComponentA(c) }

func (c *ConcreteComponentA) ExclusiveMethodOfConcreteComponentA() string { return "A" }

// ConcreteComponentB idem, con su propio método especial.
type ConcreteComponentB struct{}

func (c *ConcreteComponentB) Accept(v Visitor) { v.VisitConcreteComponentB(c) }

func (c *ConcreteComponentB) SpecialMethodOfConcreteComponentB() string { return "B" }

// ConcreteVisitor1 y 2 son dos operaciones distintas sobre la misma
// jerarquía.
type ConcreteVisitor1 struct {
	Out io.Writer
}

func (v *ConcreteVisitor1) VisitConcreteComponentA(c *ConcreteComponentA) {
	fmt.Fprintf(v.Out, "%s + ConcreteVisitor1\n", c.ExclusiveMethodOfConcreteComponentA())
}

func (v *ConcreteVisitor1) VisitConcreteComponentB(c *ConcreteComponentB) {
	fmt.Fprintf(v.Out, "%s + ConcreteVisitor1\n", c.SpecialMethodOfConcreteComponentB())
}

type ConcreteVisitor2 struct {
	Out io.Writer
}

func (v *ConcreteVisitor2) VisitConcreteComponentA(c *ConcreteComponentA) {
	fmt.Fprintf(v.Out, "%s + ConcreteVisitor2\n", c.ExclusiveMethodOfConcreteComponentA())
}

func (v *ConcreteVisitor2) VisitConcreteComponentB(c *ConcreteComponentB) {
	fmt.Fprintf(v.Out, "%s + ConcreteVisitor2\n", c.SpecialMethodOfConcreteComponentB())
}

func clientCode(components []Component, v Visitor) {
	for _, c := range components {
		c.Accept(v)
	}
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	components := []Component{&ConcreteComponentA{}, &ConcreteComponentB{}}

	fmt.Fprintln(w, "The client code works with all visitors via the base Visitor interface:")
	clientCode(components, &ConcreteVisitor1{Out: w})

	fmt.Fprintln(w, "It allows the same client code to work with different types of visitors:")
	clientCode(components, &ConcreteVisitor2{Out: w})
	return nil
}
