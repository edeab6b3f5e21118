// Package logger provides a small factory around log/slog plus typed
// attribute helpers shared by the services in this repository.
//
// Services accept a *slog.Logger via option functions and default to a
// discard logger, so the factory here is only used by the composition root.
package logger
