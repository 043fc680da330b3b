package instrument

import "context"

type correlationKey struct{}

// SetCorrelationID stores the request correlation ID on the context. The
// logging handler and outbound message publishers read it back.
func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// GetCorrelationID returns the correlation ID on the context, or "".
func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
