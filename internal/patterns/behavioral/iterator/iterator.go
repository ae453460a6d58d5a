// Package iterator: recorrido secuencial de una colección sin exponer su
// representación interna.
package iterator

import (
	"context"
	"fmt"
	"io"
)

// Iterator recorre una colección de a un elemento.
type Iterator[T any] interface {
	HasMore() bool
	Next() T
}

// Collection es un contenedor simple que sabe fabricar su iterador.
type Collection[T any] struct {
	items []T
}

func NewCollection[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: items}
}

// Add agrega un elemento al final.
func (c *Collection[T]) Add(item T) { c.items = append(c.items, item) }

// Iterator retorna un iterador posicionado al inicio.
func (c *Collection[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{items: c.items}
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) HasMore() bool { return it.pos < len(it.items) }

func (it *sliceIterator[T]) Next() T {
	item := it.items[it.pos]
	it.pos++
	return item
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	numbers := NewCollection(1, 2, 3, 4, 5)
	fmt.Fprintln(w, "Iterator: Going through the numbers")
	for it := numbers.Iterator(); it.HasMore(); {
		fmt.Fprintln(w, it.Next())
	}

	type user struct{ Name string }
	users := NewCollection(user{"alice"}, user{"bob"})
	users.Add(user{"carol"})
	fmt.Fprintln(w, "Iterator: Going through the users")
	for it := users.Iterator(); it.HasMore(); {
		fmt.Fprintln(w, it.Next().Name)
	}
	return nil
}
