package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/pkg/retry"
)

func TestDo_ExitoAlPrimerIntento(t *testing.T) {
	p := retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	calls := 0

	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ReintentaHastaExito(t *testing.T) {
	p := retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	calls := 0

	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transitorio")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

// Agotados los intentos, devuelve el último error.
func TestDo_AgotaIntentos(t *testing.T) {
	p := retry.Policy{MaxAttempts: 2, BaseDelay: time.Millisecond}
	wantErr := errors.New("sigue fallando")
	calls := 0

	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, calls)
}

func TestDo_RespetaCancelacion(t *testing.T) {
	p := retry.Policy{MaxAttempts: 5, BaseDelay: 50 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := p.Do(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("transitorio")
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
