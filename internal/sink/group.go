package sink

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Group fan-outs writes to multiple named sinks.
//
// Semántica:
//   - Write entrega el registro a cada sink en orden de registro, de forma
//     secuencial: el logger ya serializa la emisión con su mutex y un fan-out
//     paralelo podría reordenar bytes entre sinks.
//   - Los errores de los hijos se acumulan con errors.Join; un sink roto no
//     impide escribir en los demás.
//   - Add después de Close retorna ErrClosed. Los sinks nil o sin nombre se
//     rechazan, igual que los nombres repetidos.
type Group struct {
	name   string
	mu     sync.RWMutex
	order  []string
	byName map[string]Sink
	closed atomic.Bool
}

var _ Sink = (*Group)(nil)

// NewGroup construye un grupo con los sinks dados. A diferencia de Add, los
// inválidos (nil, anónimos, repetidos) se saltan en silencio: el constructor
// se usa en bootstrap donde un sink opcional ausente no es un error.
func NewGroup(name string, sinks ...Sink) *Group {
	g := &Group{
		name:   name,
		byName: make(map[string]Sink, len(sinks)),
	}
	for _, s := range sinks {
		if s == nil || s.Name() == "" {
			continue
		}
		if _, exists := g.byName[s.Name()]; exists {
			continue
		}
		g.byName[s.Name()] = s
		g.order = append(g.order, s.Name())
	}
	return g
}

// Name retorna el nombre del grupo.
func (g *Group) Name() string { return g.name }

// Add agrega un sink al grupo.
func (g *Group) Add(s Sink) error {
	if s == nil || s.Name() == "" {
		return ErrNilSink
	}
	if g.closed.Load() {
		return ErrClosed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.byName[s.Name()]; exists {
		return ErrDuplicate
	}
	g.byName[s.Name()] = s
	g.order = append(g.order, s.Name())
	return nil
}

// Remove saca un sink por nombre. No lo cierra: el ownership queda en quien
// lo agregó.
func (g *Group) Remove(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.byName[name]; !ok {
		return ErrNotFound
	}
	delete(g.byName, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}

// List retorna los nombres de los sinks en orden de registro.
func (g *Group) List() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Write entrega p a todos los sinks en orden. Retorna la longitud de p aun
// cuando algún hijo falle, para no cortar al logger; los errores se joinean.
func (g *Group) Write(p []byte) (int, error) {
	if g.closed.Load() {
		return 0, ErrClosed
	}
	var agg error
	for _, s := range g.snapshot() {
		if _, err := s.Write(p); err != nil {
			agg = errors.Join(agg, err)
		}
	}
	return len(p), agg
}

// Flush flushea todos los sinks y joinea errores.
func (g *Group) Flush() error {
	var agg error
	for _, s := range g.snapshot() {
		if err := s.Flush(); err != nil {
			agg = errors.Join(agg, err)
		}
	}
	return agg
}

// Close cierra todos los sinks, joinea errores y marca el grupo cerrado.
func (g *Group) Close() error {
	g.closed.Store(true)
	var agg error
	for _, s := range g.snapshot() {
		if err := s.Close(); err != nil {
			agg = errors.Join(agg, err)
		}
	}
	return agg
}

// snapshot copia los sinks en orden bajo RLock, para no sostener el lock
// durante I/O.
func (g *Group) snapshot() []Sink {
	g.mu.RLock()
	defer g.mu.RUnlock()
	sinks := make([]Sink, 0, len(g.order))
	for _, n := range g.order {
		if s, ok := g.byName[n]; ok {
			sinks = append(sinks, s)
		}
	}
	return sinks
}
