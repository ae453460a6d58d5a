package logger

import (
	"fmt"
	"strings"
)

// Level es la severidad de un mensaje. El orden numérico define el umbral:
// un mensaje se emite sólo si su nivel es >= al nivel del logger.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String retorna la forma canónica en minúsculas ("debug", "info", ...).
// Es la forma que se usa en config YAML y en labels de métricas.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// Label retorna la etiqueta en mayúsculas que aparece en los registros
// emitidos: DEBUG | INFO | WARNING | ERROR.
func (l Level) Label() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "LEVEL"
	}
}

// ParseLevel convierte un string a Level. Acepta "warn" como alias de
// "warning" (mismo criterio que el parseLevel de otros servicios de la casa).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelDebug, fmt.Errorf("logger: nivel desconocido %q", s)
	}
}

// MarshalText implementa encoding.TextMarshaler (YAML/JSON friendly).
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implementa encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(b []byte) error {
	lvl, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}
