package logger

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// El singleton es estado de proceso: todo lo que lo toca vive en este único
// test para no depender del orden de ejecución dentro del paquete.
func TestSingletonLazyInitExactlyOnce(t *testing.T) {
	var buf bytes.Buffer

	const callers = 32
	var (
		wg        sync.WaitGroup
		initWins  atomic.Int32
		instances [callers]*Logger
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if Init(Config{Level: LevelInfo, Out: &buf}) {
				initWins.Add(1)
			}
			instances[i] = L()
		}(i)
	}
	wg.Wait()

	// La construcción ocurre exactamente una vez aun con 32 primeras
	// llamadas concurrentes.
	require.Equal(t, int32(1), initWins.Load())

	// Todos los callers observan el mismo puntero.
	for i := 1; i < callers; i++ {
		require.Same(t, instances[0], instances[i])
	}
	require.Same(t, instances[0], L())

	// Llamadas posteriores a Init son no-ops: ni reconstruyen ni cambian
	// el sink.
	require.False(t, Init(Config{Level: LevelError, Out: bytes.NewBuffer(nil)}))
	require.Equal(t, LevelInfo, L().Level())

	// Los forwarders de paquete pegan en la misma instancia.
	Debug("below threshold")
	Info("hola")
	require.Equal(t, uint64(1), L().Count())
	require.Contains(t, buf.String(), "1\t[INFO]\n\thola\n")
	require.NotContains(t, buf.String(), "below threshold")

	// SetLevel de paquete también.
	SetLevel(LevelError)
	Warning("still below")
	Error("now this one passes")
	require.Equal(t, uint64(2), L().Count())
	require.NotContains(t, buf.String(), "still below")
	require.Contains(t, buf.String(), "2\t[ERROR]\n\tnow this one passes\n")
}
