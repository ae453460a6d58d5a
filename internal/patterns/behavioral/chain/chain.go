// Package chain: cadena de responsabilidad; cada handler atiende el pedido o
// lo pasa al siguiente.
package chain

import (
	"context"
	"fmt"
	"io"
)

// Handler atiende un pedido o lo delega al siguiente eslabón.
type Handler interface {
	SetNext(h Handler) Handler
	Handle(request string) string
}

// baseHandler implementa el encadenado; los concretos lo embeben.
type baseHandler struct {
	next Handler
}

func (b *baseHandler) SetNext(h Handler) Handler {
	b.next = h
	return h
}

func (b *baseHandler) Handle(request string) string {
	if b.next != nil {
		return b.next.Handle(request)
	}
	return ""
}

// MonkeyHandler come bananas.
type MonkeyHandler struct{ baseHandler }

func (h *MonkeyHandler) Handle(request string) string {
	if request == "Banana" {
		return "Monkey: I'll eat the " + request + "."
	}
	return h.baseHandler.Handle(request)
}

// SquirrelHandler come nueces.
type SquirrelHandler struct{ baseHandler }

func (h *SquirrelHandler) Handle(request string) string {
	if request == "Nut" {
		return "Squirrel: I'll eat the " + request + "."
	}
	return h.baseHandler.Handle(request)
}

// DogHandler come albóndigas.
type DogHandler struct{ baseHandler }

func (h *DogHandler) Handle(request string) string {
	if request == "MeatBall" {
		return "Dog: I'll eat the " + request + "."
	}
	return h.baseHandler.Handle(request)
}

func clientCode(w io.Writer, h Handler) {
	for _, food := range []string{"Nut", "Banana", "Cup of coffee"} {
		fmt.Fprintf(w, "Client: Who wants a %s?\n", food)
		if result := h.Handle(food); result != "" {
			fmt.Fprintln(w, " ", result)
		} else {
			fmt.Fprintf(w, "  %s was left untouched.\n", food)
		}
	}
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	monkey := &MonkeyHandler{}
	squirrel := &SquirrelHandler{}
	dog := &DogHandler{}
	monkey.SetNext(squirrel).SetNext(dog)

	fmt.Fprintln(w, "Chain: Monkey > Squirrel > Dog")
	clientCode(w, monkey)

	fmt.Fprintln(w, "Subchain: Squirrel > Dog")
	clientCode(w, squirrel)
	return nil
}
