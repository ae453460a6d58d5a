// Package templatemethod: el esqueleto del algoritmo es fijo; los pasos
// requeridos y los hooks los aporta cada implementación.
//
// Go no tiene herencia, así que el "abstract class" se parte en dos: la
// función TemplateMethod (esqueleto + operaciones base) y la interfaz Steps
// con los pasos que varían.
package templatemethod

import (
	"context"
	"fmt"
	"io"
)

// Steps son los pasos que cada clase concreta debe (o puede) redefinir.
type Steps interface {
	RequiredOperation1(w io.Writer)
	RequiredOperation2(w io.Writer)
	// Hook1 permite abortar la segunda mitad del algoritmo. Default: true.
	Hook1() bool
	// Hook2 es un punto de extensión vacío por defecto.
	Hook2(w io.Writer)
}

// TemplateMethod es el esqueleto: mezcla operaciones base fijas con los
// pasos delegados.
func TemplateMethod(w io.Writer, s Steps) {
	fmt.Fprintln(w, "AbstractClass says: I am doing the bulk of the work")
	s.RequiredOperation1(w)
	fmt.Fprintln(w, "AbstractClass says: But I let subclasses override some operations")
	if s.Hook1() {
		s.RequiredOperation2(w)
		fmt.Fprintln(w, "AbstractClass says: But I am doing the bulk of the work anyway")
		s.Hook2(w)
	}
}

// BaseSteps aporta los defaults de los hooks; las concretas lo embeben.
type BaseSteps struct{}

func (BaseSteps) Hook1() bool       { return true }
func (BaseSteps) Hook2(_ io.Writer) {}

// ConcreteClass1 implementa sólo los pasos requeridos.
type ConcreteClass1 struct{ BaseSteps }

func (ConcreteClass1) RequiredOperation1(w io.Writer) {
	fmt.Fprintln(w, "ConcreteClass1 says: Implemented Operation1")
}

func (ConcreteClass1) RequiredOperation2(w io.Writer) {
	fmt.Fprintln(w, "ConcreteClass1 says: Implemented Operation2")
}

// ConcreteClass2 además redefine un hook.
type ConcreteClass2 struct{ BaseSteps }

func (ConcreteClass2) RequiredOperation1(w io.Writer) {
	fmt.Fprintln(w, "ConcreteClass2 says: Implemented Operation1")
}

func (ConcreteClass2) RequiredOperation2(w io.Writer) {
	fmt.Fprintln(w, "ConcreteClass2 says: Implemented Operation2")
}

func (ConcreteClass2) Hook2(w io.Writer) {
	fmt.Fprintln(w, "ConcreteClass2 says: Overridden Hook2")
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Same client code can work with different subclasses:")
	TemplateMethod(w, ConcreteClass1{})

	fmt.Fprintln(w, "Same client code can work with different subclasses:")
	TemplateMethod(w, ConcreteClass2{})
	return nil
}
