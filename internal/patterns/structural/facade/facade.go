// Package facade: una interfaz simple delante de varios subsistemas
// complejos.
package facade

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Subsystem1 acepta órdenes de la fachada o del cliente directo.
type Subsystem1 struct{}

func (Subsystem1) Operation1() string { return "Subsystem1: Ready!" }
func (Subsystem1) OperationN() string { return "Subsystem1: Go!" }

// Subsystem2 idem; la fachada coordina a ambos.
type Subsystem2 struct{}

func (Subsystem2) Operation1() string { return "Subsystem2: Get ready!" }
func (Subsystem2) OperationZ() string { return "Subsystem2: Fire!" }

// Facade ofrece la vista simplificada; el cliente no toca los subsistemas.
type Facade struct {
	s1 Subsystem1
	s2 Subsystem2
}

func New() *Facade { return &Facade{} }

// Operation arranca ambos subsistemas y dispara sus acciones en el orden
// correcto.
func (f *Facade) Operation() string {
	var sb strings.Builder
	sb.WriteString("Facade initializes subsystems:\n")
	sb.WriteString(f.s1.Operation1() + "\n")
	sb.WriteString(f.s2.Operation1() + "\n")
	sb.WriteString("Facade orders subsystems to perform the action:\n")
	sb.WriteString(f.s1.OperationN() + "\n")
	sb.WriteString(f.s2.OperationZ() + "\n")
	return sb.String()
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	_, err := fmt.Fprint(w, New().Operation())
	return err
}
