// Package retry define la política de reintentos con backoff exponencial
// acotado que se inyecta en las operaciones de lectura/sesión. Las escrituras
// (movimientos, traslados) no pasan por aquí: fallan rápido para no aplicar
// un movimiento dos veces.
package retry

import (
	"context"
	"time"
)

// Policy parámetros de reintento: intentos máximos y backoff exponencial
// acotado por MaxDelay.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Default política usada si no se configura otra: 3 intentos, 100ms base.
func Default() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond, MaxDelay: 2 * time.Second}
}

// Do ejecuta fn hasta MaxAttempts veces, esperando BaseDelay*2^n entre
// intentos (acotado por MaxDelay). Respeta la cancelación del contexto y
// devuelve el último error si todos los intentos fallan.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := p.BaseDelay

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return err
}
