// Package prototype: clonado de objetos sin acoplarse a sus tipos concretos.
package prototype

import (
	"context"
	"fmt"
	"io"
)

// Prototype declara la operación de clonado.
type Prototype interface {
	Clone() Prototype
	Describe(w io.Writer)
}

// ConcretePrototype1 tiene un campo propio además del nombre; el clon copia
// ambos por valor.
type ConcretePrototype1 struct {
	Name  string
	Field float64
}

func (p *ConcretePrototype1) Clone() Prototype {
	clone := *p
	return &clone
}

func (p *ConcretePrototype1) Describe(w io.Writer) {
	fmt.Fprintf(w, "Call Describe from %s with field: %g\n", p.Name, p.Field)
}

// ConcretePrototype2 demuestra que el cliente puede clonar cualquier
// prototipo registrado sin conocer su tipo.
type ConcretePrototype2 struct {
	Name  string
	Field int
}

func (p *ConcretePrototype2) Clone() Prototype {
	clone := *p
	return &clone
}

func (p *ConcretePrototype2) Describe(w io.Writer) {
	fmt.Fprintf(w, "Call Describe from %s with field: %d\n", p.Name, p.Field)
}

// Registry guarda prototipos pre-armados listos para clonar.
type Registry struct {
	prototypes map[string]Prototype
}

func NewRegistry() *Registry {
	return &Registry{prototypes: map[string]Prototype{
		"PROTOTYPE_1": &ConcretePrototype1{Name: "PROTOTYPE_1", Field: 90},
		"PROTOTYPE_2": &ConcretePrototype2{Name: "PROTOTYPE_2", Field: 10},
	}}
}

// Create clona el prototipo registrado bajo name.
func (r *Registry) Create(name string) (Prototype, bool) {
	p, ok := r.prototypes[name]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	registry := NewRegistry()

	fmt.Fprintln(w, "Let's create a Prototype 1")
	if p, ok := registry.Create("PROTOTYPE_1"); ok {
		p.Describe(w)
	}
	fmt.Fprintln(w, "Let's create a Prototype 2")
	if p, ok := registry.Create("PROTOTYPE_2"); ok {
		p.Describe(w)
	}

	// El clon es independiente del original.
	original := &ConcretePrototype1{Name: "PROTOTYPE_1", Field: 90}
	clone := original.Clone().(*ConcretePrototype1)
	clone.Field = 45
	fmt.Fprintf(w, "Original keeps its field after mutating the clone: %g vs %g\n",
		original.Field, clone.Field)
	return nil
}
