package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/anshy0304/veggiefinder/internal/pkg/stacktrace"
)

// deliver runs the handler for one message, converting a panic into an error
// so a bad payload cannot take down the consumer loop, then acks or nacks
// when auto-ack is on. Ack/Nack idempotency means a handler that already
// settled the message is left alone.
func deliver(ctx context.Context, driver string, handler Handler, msg Message, autoAck bool) error {
	herr := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				frames := stacktrace.InternalPaths(stack)
				if len(frames) == 0 {
					slog.ErrorContext(ctx, "panic in message handler", "driver", driver, "panic", r, "stack", string(stack))
				} else {
					slog.ErrorContext(ctx, "panic in message handler", "driver", driver, "panic", r, "stack", frames)
				}
				err = fmt.Errorf("messaging: %s handler panic: %v", driver, r)
			}
		}()
		return handler(ctx, msg)
	}()

	if !autoAck {
		return nil
	}
	if herr == nil {
		return msg.Ack(ctx)
	}
	return msg.Nack(ctx)
}
