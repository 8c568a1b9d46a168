package export

import (
	"errors"
	"log/slog"

	"github.com/designkit/tokens"
	"go.trai.ch/zerr"
)

// ErrWrite is wrapped by every error caused by the destination writer.
var ErrWrite = errors.New("export: write failed")

// writeFailed decorates a writer error and logs it.
func writeFailed(err error, emitter string) error {
	tokens.Logger().Warn("export: write failed", slog.String("emitter", emitter), slog.Any("error", err))
	return zerr.With(zerr.Wrap(errors.Join(ErrWrite, err), "emit "+emitter), "emitter", emitter)
}
