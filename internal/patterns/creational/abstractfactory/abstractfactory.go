// Package abstractfactory: familias de productos compatibles creadas por una
// fábrica común, sin que el cliente conozca las clases concretas.
package abstractfactory

import (
	"context"
	"fmt"
	"io"
)

// ProductA es la interfaz de la primera familia de productos.
type ProductA interface {
	UsefulFunctionA() string
}

// ProductB colabora con ProductA, pero sólo dentro de la misma variante.
type ProductB interface {
	UsefulFunctionB() string
	AnotherUsefulFunctionB(collaborator ProductA) string
}

// Factory declara los constructores de cada producto de la familia.
type Factory interface {
	CreateProductA() ProductA
	CreateProductB() ProductB
}

type productA1 struct{}

func (productA1) UsefulFunctionA() string { return "The result of the product A1." }

type productA2 struct{}

func (productA2) UsefulFunctionA() string { return "The result of the product A2." }

type productB1 struct{}

func (productB1) UsefulFunctionB() string { return "The result of the product B1." }
func (productB1) AnotherUsefulFunctionB(c ProductA) string {
	return fmt.Sprintf("The result of the B1 collaborating with ( %s )", c.UsefulFunctionA())
}

type productB2 struct{}

func (productB2) UsefulFunctionB() string { return "The result of the product B2." }
func (productB2) AnotherUsefulFunctionB(c ProductA) string {
	return fmt.Sprintf("The result of the B2 collaborating with ( %s )", c.UsefulFunctionA())
}

// Factory1 crea la variante 1 completa; Factory2 la variante 2.
type Factory1 struct{}

func (Factory1) CreateProductA() ProductA { return productA1{} }
func (Factory1) CreateProductB() ProductB { return productB1{} }

type Factory2 struct{}

func (Factory2) CreateProductA() ProductA { return productA2{} }
func (Factory2) CreateProductB() ProductB { return productB2{} }

// clientCode trabaja sólo contra las interfaces: cualquier fábrica sirve.
func clientCode(w io.Writer, f Factory) {
	a := f.CreateProductA()
	b := f.CreateProductB()
	fmt.Fprintln(w, b.UsefulFunctionB())
	fmt.Fprintln(w, b.AnotherUsefulFunctionB(a))
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Client: Testing client code with the first factory type:")
	clientCode(w, Factory1{})
	fmt.Fprintln(w, "Client: Testing the same client code with the second factory type:")
	clientCode(w, Factory2{})
	return nil
}
