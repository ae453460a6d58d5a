// Package catalog mantiene el registro de demos de patrones de diseño.
//
// Cada demo es un snippet independiente identificado por (Category, Name);
// el catálogo es sólo el lanzador, no una arquitectura compartida: ningún
// demo conoce a otro.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Categorías clásicas del catálogo.
const (
	Creational = "creational"
	Structural = "structural"
	Behavioral = "behavioral"
)

// Key identifica un demo por categoría y nombre. Las claves se normalizan a
// minúsculas en Register/Lookup, así el CLI es case-insensitive.
type Key struct {
	Category string
	Name     string
}

// IsZero reporta si la clave está vacía.
func (k Key) IsZero() bool { return k.Category == "" || k.Name == "" }

// String retorna la forma "category/name" que usa el CLI.
func (k Key) String() string { return k.Category + "/" + k.Name }

// ParseKey acepta "category/name" o un nombre pelado (la categoría se
// resuelve después con LookupName).
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, errors.New("catalog: empty key")
	}
	parts := strings.SplitN(s, "/", 2)
	if len(parts) == 1 {
		return Key{Name: parts[0]}, nil
	}
	k := Key{Category: parts[0], Name: parts[1]}
	if k.IsZero() {
		return Key{}, fmt.Errorf("catalog: malformed key %q", s)
	}
	return k, nil
}

// RunFunc ejecuta un demo escribiendo su salida ilustrativa en w.
type RunFunc func(ctx context.Context, w io.Writer) error

// Demo es una entrada del catálogo.
type Demo struct {
	Key Key
	Doc string // una línea para `patrones list`
	Run RunFunc
}

var (
	// ErrDuplicate indica un intento de registrar una clave repetida.
	ErrDuplicate = errors.New("catalog: duplicate registration")
	// ErrUnknown indica un lookup/run de una clave no registrada.
	ErrUnknown = errors.New("catalog: unknown demo")
	// ErrSealed indica un Register sobre un catálogo sellado.
	ErrSealed = errors.New("catalog: sealed")
)

// Catalog es un registro de demos seguro para uso concurrente. Una vez
// sellado (Seal), no admite más registros; los lookups siguen funcionando.
type Catalog struct {
	mu     sync.RWMutex
	data   map[Key]Demo
	sealed atomic.Bool
}

// New crea un catálogo vacío.
func New() *Catalog {
	return &Catalog{data: make(map[Key]Demo)}
}

func normalize(k Key) Key {
	k.Category = strings.ToLower(strings.TrimSpace(k.Category))
	k.Name = strings.ToLower(strings.TrimSpace(k.Name))
	return k
}

// Sealed reporta si el catálogo está sellado.
func (c *Catalog) Sealed() bool { return c.sealed.Load() }

// Seal impide más registros. Idempotente; retorna true si esta llamada
// cambió el estado.
func (c *Catalog) Seal() bool { return !c.sealed.Swap(true) }

// Register agrega un demo. Falla con ErrSealed o ErrDuplicate.
func (c *Catalog) Register(d Demo) error {
	if c.Sealed() {
		return ErrSealed
	}
	if d.Key.IsZero() || d.Run == nil {
		return errors.New("catalog: invalid demo (empty key or nil run)")
	}
	d.Key = normalize(d.Key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[d.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, d.Key)
	}
	c.data[d.Key] = d
	return nil
}

// MustRegister panics on registration error.
func (c *Catalog) MustRegister(d Demo) {
	if err := c.Register(d); err != nil {
		panic(err)
	}
}

// Lookup retorna el demo para la clave k, si existe.
func (c *Catalog) Lookup(k Key) (Demo, bool) {
	k = normalize(k)
	c.mu.RLock()
	d, ok := c.data[k]
	c.mu.RUnlock()
	return d, ok
}

// LookupName busca por nombre pelado. Si el nombre existe en una sola
// categoría lo retorna; si es ambiguo o no existe, ok=false.
func (c *Catalog) LookupName(name string) (Demo, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	c.mu.RLock()
	defer c.mu.RUnlock()

	var found Demo
	var hits int
	for k, d := range c.data {
		if k.Name == name {
			found = d
			hits++
		}
	}
	return found, hits == 1
}

// Run localiza el demo k y lo ejecuta con w como salida.
// Retorna ErrUnknown si la clave no está registrada.
func (c *Catalog) Run(ctx context.Context, k Key, w io.Writer) error {
	d, ok := c.Lookup(k)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, normalize(k))
	}
	return d.Run(ctx, w)
}

// Entries retorna un snapshot de los demos en orden determinístico
// (categoría, luego nombre).
func (c *Catalog) Entries() []Demo {
	c.mu.RLock()
	items := make([]Demo, 0, len(c.data))
	for _, d := range c.data {
		items = append(items, d)
	}
	c.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		ki, kj := items[i].Key, items[j].Key
		if ki.Category == kj.Category {
			return ki.Name < kj.Name
		}
		return ki.Category < kj.Category
	})
	return items
}

// Len retorna la cantidad de demos registrados.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
