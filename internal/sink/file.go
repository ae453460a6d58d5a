package sink

import (
	"bufio"
	"fmt"
	"os"
	"sync"
)

// fileSink escribe a un archivo con buffer. El mutex protege el bufio.Writer
// frente a Flush/Close concurrentes con Write.
type fileSink struct {
	mu   sync.Mutex
	name string
	f    *os.File
	bw   *bufio.Writer
}

// File abre (o crea, en modo append) un sink de archivo.
// El nombre del sink es la ruta.
func File(path string) (Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: abriendo %s: %w", path, err)
	}
	return &fileSink{name: path, f: f, bw: bufio.NewWriter(f)}, nil
}

func (s *fileSink) Name() string { return s.name }

func (s *fileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bw == nil {
		return 0, ErrClosed
	}
	return s.bw.Write(p)
}

func (s *fileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bw == nil {
		return ErrClosed
	}
	return s.bw.Flush()
}

// Close flushea y cierra el archivo. Es idempotente.
func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bw == nil {
		return nil
	}
	ferr := s.bw.Flush()
	cerr := s.f.Close()
	s.bw = nil
	if ferr != nil {
		return ferr
	}
	return cerr
}
