package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/dropDatabas3/patrones/internal/metrics"
)

// Logger es un logger con umbral de nivel y contador monótono.
//
// Todas las operaciones (Log, SetLevel, Level, Count) se serializan con un
// único mutex: el incremento del contador y la emisión del registro son una
// sola sección crítica, por lo que dos llamadas concurrentes nunca observan
// el mismo contador ni intercalan sus bytes en la salida. No hay timeouts:
// Log bloquea hasta adquirir el lock.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
	count uint64
}

// New construye un Logger que escribe en out con el umbral dado.
// out no puede ser nil.
func New(out io.Writer, level Level) *Logger {
	if out == nil {
		panic("logger: nil output sink")
	}
	return &Logger{out: out, level: level}
}

// SetLevel fija el umbral. Entra por el mismo mutex que Log, así que el
// orden relativo entre SetLevel y Logs concurrentes es el orden de
// adquisición del lock (last-writer-wins; no hay garantía más fuerte).
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level retorna el umbral vigente.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Count retorna cuántos mensajes fueron emitidos (los descartados no cuentan).
func (l *Logger) Count() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Log emite msg si level >= umbral; si no, lo descarta en silencio.
// El formato emitido es exactamente:
//
//	<contador>\t[<LEVEL>]\n\t<mensaje>\n
//
// Un error de escritura del sink no se propaga: el logger no tiene canal de
// error hacia el caller y un sink roto no debe romper el contador.
func (l *Logger) Log(level Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		metrics.LogDropped.WithLabelValues(level.String()).Inc()
		return
	}
	l.count++
	fmt.Fprintf(l.out, "%d\t[%s]\n\t%s\n", l.count, level.Label(), msg)
	metrics.LogEmitted.WithLabelValues(level.String()).Inc()
}

// Conveniencias por nivel.

func (l *Logger) Debug(msg string)   { l.Log(LevelDebug, msg) }
func (l *Logger) Info(msg string)    { l.Log(LevelInfo, msg) }
func (l *Logger) Warning(msg string) { l.Log(LevelWarning, msg) }
func (l *Logger) Error(msg string)   { l.Log(LevelError, msg) }

// Debugf y compañía: formato printf-style.

func (l *Logger) Debugf(format string, args ...any) {
	l.Log(LevelDebug, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

func (l *Logger) Warningf(format string, args ...any) {
	l.Log(LevelWarning, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.Log(LevelError, fmt.Sprintf(format, args...))
}
