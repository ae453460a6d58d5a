package logger

import "context"

type ctxKey struct{}

// ToContext inyecta un logger en el contexto.
// Usado por el runner para propagar un logger "scoped" a los demos.
func ToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From extrae el logger del contexto.
// Si no hay logger en el contexto, retorna el singleton. Esto permite usar
// From(ctx) en cualquier parte sin preocuparse de si alguien inyectó o no.
func From(ctx context.Context) *Logger {
	if ctx == nil {
		return L()
	}
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*Logger); ok {
			return l
		}
	}
	return L()
}
