package bootstrap

import (
	"context"
	"log/slog"
)

// Stoppable is the server side of shutdown
type Stoppable interface {
	Stop(ctx context.Context) error
}

// Closer releases the database pool
type Closer interface {
	Shutdown()
}

// GracefulShutdown stops accepting requests, waits for in-flight ones until
// ctx expires, then closes the database pool. Errors are logged and do not
// stop the sequence.
func GracefulShutdown(ctx context.Context, srv Stoppable, db Closer) {
	slog.Info(LogMsgShuttingDownServer)
	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgClosingDatabase)
	db.Shutdown()

	slog.Info(LogMsgServerStopped)
}
