// Package sink abstrae la salida del logger: un destino con nombre que se
// puede escribir, flushear y cerrar. El Group permite duplicar la salida
// (stdout + archivo) manteniendo el orden de los registros.
package sink

import (
	"errors"
	"io"
)

// Sink es un destino de escritura con nombre.
// Write debe comportarse como io.Writer; Flush y Close son opcionalmente
// no-ops según el destino.
type Sink interface {
	io.Writer
	Name() string
	Flush() error
	Close() error
}

var (
	// ErrClosed indica una operación sobre un sink/grupo cerrado.
	ErrClosed = errors.New("sink: closed")
	// ErrNilSink indica que se intentó agregar un sink nil o anónimo.
	ErrNilSink = errors.New("sink: nil or anonymous sink")
	// ErrDuplicate indica un nombre de sink repetido dentro de un grupo.
	ErrDuplicate = errors.New("sink: duplicate sink name")
	// ErrNotFound indica que el sink no existe en el grupo.
	ErrNotFound = errors.New("sink: not found")
)

// writerSink envuelve un io.Writer arbitrario. Flush/Close son no-ops:
// el writer subyacente no es propiedad del sink (p. ej. os.Stdout).
type writerSink struct {
	name string
	w    io.Writer
}

// Writer construye un Sink sobre un io.Writer existente.
func Writer(name string, w io.Writer) Sink {
	return &writerSink{name: name, w: w}
}

func (s *writerSink) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *writerSink) Name() string                { return s.name }
func (s *writerSink) Flush() error                { return nil }
func (s *writerSink) Close() error                { return nil }
