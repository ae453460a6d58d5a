// Package logger provides a process-wide, mutex-guarded, leveled logger.
//
// # Design Decisions
//
//   - Singleton: una sola instancia global, construida de forma perezosa la
//     primera vez que alguien la pide (Init() explícito o L() directo).
//     La construcción ocurre exactamente una vez vía sync.Once.
//   - Orden total: un único mutex serializa SetLevel/Log/Count. El contador y
//     la emisión del mensaje forman una sola sección crítica, así la secuencia
//     de contadores observada coincide con el orden de adquisición del lock.
//   - Levels: debug < info < warning < error. Los mensajes por debajo del
//     umbral se descartan en silencio (sin contador, sin error).
//   - Formato: cada registro se emite como "<n>\t[<LEVEL>]\n\t<mensaje>\n".
//
// # Usage
//
// Inicialización (una vez en main.go):
//
//	logger.Init(logger.Config{
//	    Level: logger.LevelInfo,
//	    Out:   os.Stdout,
//	})
//
// En cualquier parte del código:
//
//	logger.Info("catalog sealed")
//	logger.Log(logger.LevelWarning, "demo took too long")
//
// Con contexto (el runner inyecta un logger "scoped"):
//
//	log := logger.From(ctx)
//	log.Debug("running demo")
package logger
