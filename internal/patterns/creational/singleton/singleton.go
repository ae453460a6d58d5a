// Package singleton demuestra el accessor singleton del logger: acceso
// perezoso thread-safe y emisión ordenada bajo contención.
//
// El demo usa un Logger propio (no el singleton del proceso) para que su
// salida vaya al writer del demo y no ensucie el contador global; la
// identidad del singleton real se verifica aparte con logger.L().
package singleton

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dropDatabas3/patrones/internal/observability/logger"
)

// Run ejecuta el demo: el escenario clásico de cuatro hilos concurrentes
// logueando a distintos niveles con umbral en info.
func Run(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "//// Logger Singleton ////")

	log := logger.New(w, logger.LevelDebug)
	log.SetLevel(logger.LevelInfo)

	var wg sync.WaitGroup
	for _, m := range []struct {
		level logger.Level
		text  string
	}{
		{logger.LevelDebug, "This is just a simple development check."},
		{logger.LevelInfo, "Here are some extra details."},
		{logger.LevelWarning, "Be careful with this potential issue."},
		{logger.LevelError, "A major problem has caused a fatal stoppage."},
	} {
		wg.Add(1)
		go func(level logger.Level, text string) {
			defer wg.Done()
			log.Log(level, text)
		}(m.level, m.text)
	}
	wg.Wait()

	// Tres mensajes pasan el umbral; el debug se descarta sin tocar el
	// contador.
	fmt.Fprintf(w, "accepted messages: %d\n", log.Count())

	// Identidad del singleton del proceso: todos los accesos concurrentes
	// ven el mismo puntero.
	const callers = 8
	instances := make([]*logger.Logger, callers)
	wg = sync.WaitGroup{}
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = logger.L()
		}(i)
	}
	wg.Wait()

	same := true
	for _, inst := range instances[1:] {
		if inst != instances[0] {
			same = false
		}
	}
	fmt.Fprintf(w, "all callers observe the same instance: %v\n", same)
	return nil
}
