// Package adapter: hace compatible una interfaz ajena (Adaptee) con la que
// espera el cliente (Target).
package adapter

import (
	"context"
	"fmt"
	"io"
)

// Target es la interfaz que el código cliente entiende.
type Target interface {
	Request() string
}

// DefaultTarget es la implementación nativa.
type DefaultTarget struct{}

func (DefaultTarget) Request() string {
	return "Target: The default target's behavior."
}

// Adaptee tiene una interfaz útil pero incompatible: habla "al revés".
type Adaptee struct{}

func (Adaptee) SpecificRequest() string {
	return ".eetpadA eht fo roivaheb laicepS"
}

// Adapter traduce la interfaz del Adaptee a la del Target.
type Adapter struct {
	Adaptee Adaptee
}

func (a Adapter) Request() string {
	return "Adapter: (TRANSLATED) " + reverse(a.Adaptee.SpecificRequest())
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func clientCode(w io.Writer, t Target) {
	fmt.Fprintln(w, t.Request())
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Client: I can work just fine with the Target objects:")
	clientCode(w, DefaultTarget{})

	adaptee := Adaptee{}
	fmt.Fprintln(w, "Client: The Adaptee class has a weird interface. See, I don't understand it:")
	fmt.Fprintln(w, "Adaptee:", adaptee.SpecificRequest())

	fmt.Fprintln(w, "Client: But I can work with it via the Adapter:")
	clientCode(w, Adapter{Adaptee: adaptee})
	return nil
}
