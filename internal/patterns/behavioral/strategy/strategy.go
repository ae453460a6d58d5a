// Package strategy: el contexto ejecuta un algoritmo intercambiable sin
// conocer su implementación.
package strategy

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Strategy es el algoritmo intercambiable.
type Strategy interface {
	DoAlgorithm(data []string) []string
}

// NormalStrategy ordena ascendente.
type NormalStrategy struct{}

func (NormalStrategy) DoAlgorithm(data []string) []string {
	out := append([]string(nil), data...)
	sort.Strings(out)
	return out
}

// ReverseStrategy ordena descendente.
type ReverseStrategy struct{}

func (ReverseStrategy) DoAlgorithm(data []string) []string {
	out := append([]string(nil), data...)
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// Context trabaja contra la interfaz; la estrategia se puede cambiar en
// runtime.
type Context struct {
	strategy Strategy
}

func NewContext(s Strategy) *Context { return &Context{strategy: s} }

func (c *Context) SetStrategy(s Strategy) { c.strategy = s }

func (c *Context) DoSomeBusinessLogic(w io.Writer) {
	fmt.Fprintln(w, "Context: Sorting data using the strategy (not sure how it'll do it)")
	result := c.strategy.DoAlgorithm([]string{"a", "e", "c", "b", "d"})
	fmt.Fprintln(w, strings.Join(result, ","))
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	c := NewContext(NormalStrategy{})
	fmt.Fprintln(w, "Client: Strategy is set to normal sorting.")
	c.DoSomeBusinessLogic(w)

	fmt.Fprintln(w, "Client: Strategy is set to reverse sorting.")
	c.SetStrategy(ReverseStrategy{})
	c.DoSomeBusinessLogic(w)
	return nil
}
