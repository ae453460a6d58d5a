package logger

import (
	"io"
	"os"
	"sync"
)

// Config configura la instancia singleton.
type Config struct {
	// Level define el umbral inicial. Default: debug (todo se emite).
	Level Level

	// Out es el sink de salida. Default: os.Stdout.
	Out io.Writer
}

var (
	once     sync.Once
	instance *Logger
)

// Init inicializa el logger singleton con la configuración dada.
// Es idempotente: sólo la primera llamada (entre todas las goroutines)
// construye la instancia; las demás son no-ops. Retorna true si esta llamada
// fue la que realizó la construcción.
//
// La construcción no puede fallar: si algún día lo hiciera (p. ej. un sink
// que no se puede abrir), sería fatal, no hay camino de recuperación para un
// singleton fundacional.
func Init(cfg Config) bool {
	initialized := false
	once.Do(func() {
		out := cfg.Out
		if out == nil {
			out = os.Stdout
		}
		instance = New(out, cfg.Level)
		initialized = true
	})
	return initialized
}

// L retorna el logger singleton. Si Init() no fue llamado, construye uno
// por defecto (stdout, nivel debug). Todas las llamadas concurrentes
// retornan el mismo puntero; la construcción ocurre exactamente una vez.
func L() *Logger {
	Init(Config{})
	return instance
}

// Package-level forwarders sobre el singleton, al estilo sugar.

// SetLevel fija el umbral del singleton.
func SetLevel(level Level) { L().SetLevel(level) }

// Log emite msg en el singleton.
func Log(level Level, msg string) { L().Log(level, msg) }

func Debug(msg string)   { L().Debug(msg) }
func Info(msg string)    { L().Info(msg) }
func Warning(msg string) { L().Warning(msg) }
func Error(msg string)   { L().Error(msg) }

func Debugf(format string, args ...any)   { L().Debugf(format, args...) }
func Infof(format string, args ...any)    { L().Infof(format, args...) }
func Warningf(format string, args ...any) { L().Warningf(format, args...) }
func Errorf(format string, args ...any)   { L().Errorf(format, args...) }
