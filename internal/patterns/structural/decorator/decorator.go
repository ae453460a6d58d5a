// Package decorator: comportamiento adicional envolviendo al componente, sin
// tocar su clase.
package decorator

import (
	"context"
	"fmt"
	"io"
)

// Component define la operación que los decoradores pueden alterar.
type Component interface {
	Operation() string
}

// ConcreteComponent es el objeto base a decorar.
type ConcreteComponent struct{}

func (ConcreteComponent) Operation() string { return "ConcreteComponent" }

// ConcreteDecoratorA envuelve un Component y altera su resultado.
type ConcreteDecoratorA struct {
	Wrapped Component
}

func (d ConcreteDecoratorA) Operation() string {
	return "ConcreteDecoratorA(" + d.Wrapped.Operation() + ")"
}

// ConcreteDecoratorB puede apilarse sobre cualquier otro decorador.
type ConcreteDecoratorB struct {
	Wrapped Component
}

func (d ConcreteDecoratorB) Operation() string {
	return "ConcreteDecoratorB(" + d.Wrapped.Operation() + ")"
}

func clientCode(w io.Writer, c Component) {
	fmt.Fprintln(w, "RESULT:", c.Operation())
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	simple := ConcreteComponent{}
	fmt.Fprintln(w, "Client: I've got a simple component:")
	clientCode(w, simple)

	decorated := ConcreteDecoratorB{Wrapped: ConcreteDecoratorA{Wrapped: simple}}
	fmt.Fprintln(w, "Client: Now I've got a decorated component:")
	clientCode(w, decorated)
	return nil
}
