// Package builder: construcción fluida (method chaining) de un árbol de
// elementos HTML, el ejemplo "real world" del patrón Builder.
package builder

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Tag enumera los elementos HTML que soporta el demo.
type Tag uint8

const (
	Body Tag = iota
	H1
	H2
	P
)

func (t Tag) String() string {
	switch t {
	case Body:
		return "body"
	case H1:
		return "h1"
	case H2:
		return "h2"
	case P:
		return "p"
	default:
		return "tag"
	}
}

// Element es un nodo del árbol: tag, contenido opcional e hijos por valor.
type Element struct {
	tag      Tag
	content  string
	children []Element
}

// render genera el markup. Un elemento sin contenido abre línea para que los
// hijos queden anidados, igual que el operator<< del ejemplo clásico.
func (e Element) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "<%s>", e.tag)
	if e.content != "" {
		sb.WriteString(e.content)
	} else {
		sb.WriteByte('\n')
	}
	for _, child := range e.children {
		child.render(sb)
	}
	fmt.Fprintf(sb, "</%s>\n", e.tag)
}

// String retorna el markup completo del elemento.
func (e Element) String() string {
	var sb strings.Builder
	e.render(&sb)
	return sb.String()
}

// ElementBuilder arma un Element raíz agregando hijos de a uno. AddChild
// retorna el builder para encadenar llamadas (fluent builder).
type ElementBuilder struct {
	root Element
}

// NewElement arranca un builder con el tag y contenido de la raíz.
func NewElement(tag Tag, content string) *ElementBuilder {
	return &ElementBuilder{root: Element{tag: tag, content: content}}
}

// AddChild agrega un hijo directo a la raíz.
func (b *ElementBuilder) AddChild(tag Tag, content string) *ElementBuilder {
	b.root.children = append(b.root.children, Element{tag: tag, content: content})
	return b
}

// Build retorna el elemento construido.
func (b *ElementBuilder) Build() Element { return b.root }

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	body := NewElement(Body, "").
		AddChild(H1, "Title of the Page").
		AddChild(H2, "Subtitle A").
		AddChild(P, "Lorem ipsum dolor sit amet, ...").
		AddChild(H2, "Subtitle B").
		AddChild(P, "... consectetur adipiscing elit.").
		Build()

	_, err := io.WriteString(w, body.String())
	return err
}
