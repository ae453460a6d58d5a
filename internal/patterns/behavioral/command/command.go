// Package command: encapsula pedidos como objetos con identidad propia, así
// el invocador los dispara sin conocer al receptor.
package command

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Command es un pedido autocontenido. El ID permite rastrear cada comando en
// la salida del invocador.
type Command interface {
	ID() string
	Execute()
}

// SimpleCommand resuelve el pedido por sí mismo.
type SimpleCommand struct {
	id      string
	out     io.Writer
	payload string
}

func NewSimpleCommand(out io.Writer, payload string) *SimpleCommand {
	return &SimpleCommand{id: uuid.NewString(), out: out, payload: payload}
}

func (c *SimpleCommand) ID() string { return c.id }

func (c *SimpleCommand) Execute() {
	fmt.Fprintf(c.out, "SimpleCommand: See, I can do simple things like printing (%s)\n", c.payload)
}

// Receiver sabe hacer el trabajo de verdad.
type Receiver struct {
	out io.Writer
}

func (r *Receiver) DoSomething(a string) {
	fmt.Fprintf(r.out, "Receiver: Working on (%s.)\n", a)
}

func (r *Receiver) DoSomethingElse(b string) {
	fmt.Fprintf(r.out, "Receiver: Also working on (%s.)\n", b)
}

// ComplexCommand delega en el receptor con los parámetros capturados al
// construirse.
type ComplexCommand struct {
	id       string
	receiver *Receiver
	a, b     string
}

func NewComplexCommand(receiver *Receiver, a, b string) *ComplexCommand {
	return &ComplexCommand{id: uuid.NewString(), receiver: receiver, a: a, b: b}
}

func (c *ComplexCommand) ID() string { return c.id }

func (c *ComplexCommand) Execute() {
	c.receiver.DoSomething(c.a)
	c.receiver.DoSomethingElse(c.b)
}

// Invoker dispara comandos en los momentos que le tocan, sin importarle qué
// hay adentro.
type Invoker struct {
	out               io.Writer
	onStart, onFinish Command
}

func NewInvoker(out io.Writer) *Invoker { return &Invoker{out: out} }

func (i *Invoker) SetOnStart(c Command)  { i.onStart = c }
func (i *Invoker) SetOnFinish(c Command) { i.onFinish = c }

func (i *Invoker) DoSomethingImportant() {
	if i.onStart != nil {
		fmt.Fprintf(i.out, "Invoker: Does anybody want something done before I begin? (command %.8s)\n", i.onStart.ID())
		i.onStart.Execute()
	}
	fmt.Fprintln(i.out, "Invoker: ...doing something really important...")
	if i.onFinish != nil {
		fmt.Fprintf(i.out, "Invoker: Does anybody want something done after I finish? (command %.8s)\n", i.onFinish.ID())
		i.onFinish.Execute()
	}
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	invoker := NewInvoker(w)
	invoker.SetOnStart(NewSimpleCommand(w, "Say Hi!"))
	receiver := &Receiver{out: w}
	invoker.SetOnFinish(NewComplexCommand(receiver, "Send email", "Save report"))

	invoker.DoSomethingImportant()
	return nil
}
