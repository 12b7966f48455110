package tsrec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsrec/errs"
	"github.com/arloliu/tsrec/internal/hash"
	"github.com/arloliu/tsrec/record"
)

func TestAccumulateAndPush(t *testing.T) {
	rec, err := New()
	require.NoError(t, err)

	require.NoError(t, rec.AddInt("machine/engine/rpm", 2400, 1000))
	require.NoError(t, rec.AddFloat("machine/engine/temp", 88.5, 1000))
	require.NoError(t, rec.AddInt("machine/engine/rpm", 2410, 2000))

	var sent []byte
	pusher, err := NewPusher(record.SenderFunc(func(_ context.Context, payload []byte) error {
		sent = append([]byte(nil), payload...)
		return nil
	}))
	require.NoError(t, err)

	var cbErr error
	require.NoError(t, pusher.Push(context.Background(), rec, func(err error) {
		cbErr = err
	}))
	require.NoError(t, cbErr)
	require.NotEmpty(t, sent)

	// Pushed records start the next accumulation cycle empty.
	require.Equal(t, 0, rec.TimestampCount())
}

func TestNewPusherNilSender(t *testing.T) {
	_, err := NewPusher(nil)
	require.ErrorIs(t, err, errs.ErrNilSender)
}

func TestResourceID(t *testing.T) {
	require.Equal(t, hash.ID("machine/engine/rpm"), ResourceID("machine/engine/rpm"))
	require.NotZero(t, ResourceID("machine/engine/rpm"))
}

func TestNewWithOptions(t *testing.T) {
	rec, err := New(record.WithBufferSize(1024), record.WithTimestampFactor(0.001))
	require.NoError(t, err)
	require.NotNil(t, rec)

	_, err = New(record.WithBufferSize(-1))
	require.Error(t, err)
}
