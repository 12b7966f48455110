package record

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/tsrec/compress"
	"github.com/arloliu/tsrec/errs"
	"github.com/arloliu/tsrec/format"
	"github.com/arloliu/tsrec/internal/options"
)

// Sender is the transport collaborator that delivers one compressed record
// payload to the management server. Implementations own their session
// lifecycle, retries and timeouts; the pusher performs exactly one Send per
// Push call.
type Sender interface {
	Send(ctx context.Context, payload []byte) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, payload []byte) error

func (f SenderFunc) Send(ctx context.Context, payload []byte) error {
	return f(ctx, payload)
}

// CompletionFunc reports the outcome of a Push. It is invoked exactly once
// per Push call, with a nil error on successful delivery.
type CompletionFunc func(err error)

// Pusher finalizes records for transmission: it encodes (using the record's
// cached container when valid), compresses, and hands the payload to the
// transport. On delivery success the record is reset for the next
// accumulation cycle; on failure it is left untouched so a retry pushes
// identical bytes.
type Pusher struct {
	sender      Sender
	codec       compress.Codec
	compression format.CompressionType
	logger      zerolog.Logger
}

// PusherOption configures a Pusher at construction time.
type PusherOption = options.Option[*Pusher]

// WithCompression selects the codec applied to encoded containers before
// sending. The default is deflate, which the management server expects.
func WithCompression(compression format.CompressionType) PusherOption {
	return options.New(func(p *Pusher) error {
		codec, err := compress.CreateCodec(compression, "push")
		if err != nil {
			return err
		}
		p.codec = codec
		p.compression = compression

		return nil
	})
}

// WithLogger attaches a structured logger to the pusher. The default is a
// no-op logger.
func WithLogger(logger zerolog.Logger) PusherOption {
	return options.NoError(func(p *Pusher) {
		p.logger = logger
	})
}

// NewPusher creates a Pusher that delivers records through sender.
func NewPusher(sender Sender, opts ...PusherOption) (*Pusher, error) {
	if sender == nil {
		return nil, errs.ErrNilSender
	}

	p := &Pusher{
		sender:      sender,
		codec:       compress.NewDeflateCompressor(),
		compression: format.CompressionDeflate,
		logger:      zerolog.Nop(),
	}

	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Push encodes, compresses and sends the record's accumulated samples.
//
// The returned error and the done callback report the same outcome; done is
// invoked exactly once, after the transport call returns, and may be nil.
// Transport failures are wrapped as errs.ErrTransportFailure and leave the
// record intact for retry.
func (p *Pusher) Push(ctx context.Context, rec *Record, done CompletionFunc) error {
	err := p.push(ctx, rec)
	if done != nil {
		done(err)
	}

	return err
}

func (p *Pusher) push(ctx context.Context, rec *Record) error {
	encoded, err := rec.Encode()
	if err != nil {
		return err
	}

	payload, err := p.codec.Compress(encoded)
	if err != nil {
		return fmt.Errorf("failed to compress push payload: %w", err)
	}

	p.logger.Debug().
		Str("compression", p.compression.String()).
		Int("encoded_size", len(encoded)).
		Int("payload_size", len(payload)).
		Int("timestamps", rec.TimestampCount()).
		Int("columns", rec.ColumnCount()).
		Msg("pushing record")

	if err := p.sender.Send(ctx, payload); err != nil {
		p.logger.Warn().Err(err).Msg("record push failed, retaining samples")

		return fmt.Errorf("%w: %s", errs.ErrTransportFailure, err)
	}

	rec.Reset()
	p.logger.Debug().Msg("record pushed and reset")

	return nil
}
