package port

import (
	"context"

	"github.com/rs/zerolog"
)

// LoggerFromContext resolves the current command logger from context.
// The engine depends on this boundary instead of importing infrastructure logging.
type LoggerFromContext func(ctx context.Context) *zerolog.Logger
