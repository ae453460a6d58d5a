// Package composite: árboles de objetos donde hojas y ramas se tratan igual.
package composite

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Component es la interfaz común de hojas y ramas.
type Component interface {
	Operation() string
}

// Leaf hace el trabajo real; no tiene hijos.
type Leaf struct{}

func (Leaf) Operation() string { return "Leaf" }

// Composite delega en sus hijos y compone el resultado.
type Composite struct {
	children []Component
}

// Add agrega un hijo y retorna el composite para encadenar.
func (c *Composite) Add(child Component) *Composite {
	c.children = append(c.children, child)
	return c
}

// Remove saca la primera ocurrencia del hijo.
func (c *Composite) Remove(child Component) {
	for i, cur := range c.children {
		if cur == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

func (c *Composite) Operation() string {
	parts := make([]string, 0, len(c.children))
	for _, child := range c.children {
		parts = append(parts, child.Operation())
	}
	return "Branch(" + strings.Join(parts, "+") + ")"
}

func clientCode(w io.Writer, c Component) {
	fmt.Fprintln(w, "RESULT:", c.Operation())
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Client: I've got a simple component:")
	clientCode(w, Leaf{})

	tree := (&Composite{}).
		Add((&Composite{}).Add(Leaf{}).Add(Leaf{})).
		Add((&Composite{}).Add(Leaf{}))
	fmt.Fprintln(w, "Client: Now I've got a composite tree:")
	clientCode(w, tree)

	fmt.Fprintln(w, "Client: I don't need to check the component classes even when managing the tree:")
	tree.Add(Leaf{})
	clientCode(w, tree)
	return nil
}
