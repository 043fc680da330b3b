package instrument

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// initLogging replaces the process default slog logger with a JSON handler
// on stdout, optionally fanned out to the OTel log bridge. Attributes named
// in maskFields are redacted before any handler sees them.
func initLogging(serviceName string, lp *sdklog.LoggerProvider, maskFields []string) {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		AddSource:   true,
		ReplaceAttr: renameAttr,
	})

	var handler slog.Handler = stdout
	if lp != nil {
		handler = &fanoutHandler{handlers: []slog.Handler{
			stdout,
			otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(lp)),
		}}
	}

	handler = &redactHandler{next: handler, keys: normalizeMaskKeys(maskFields)}
	slog.SetDefault(slog.New(&enrichHandler{Handler: handler, service: serviceName}))
}

// renameAttr maps slog's default keys onto the log schema the collectors
// expect and trims source paths to the repository-relative form.
func renameAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		src, ok := a.Value.Any().(*slog.Source)
		if !ok {
			return a
		}
		_, rel, found := strings.Cut(src.File, "/internal/")
		if !found {
			return slog.Attr{}
		}
		return slog.String("file", fmt.Sprintf("internal/%s:%d", rel, src.Line))
	}
	return a
}

// enrichHandler stamps every record with the service name and, when present,
// the request correlation ID.
type enrichHandler struct {
	slog.Handler
	service string
}

func (h *enrichHandler) Handle(ctx context.Context, r slog.Record) error {
	if cid := GetCorrelationID(ctx); cid != "" {
		r.AddAttrs(slog.String("_cID", cid))
	}
	r.AddAttrs(slog.String("service", h.service))
	return h.Handler.Handle(ctx, r)
}

// fanoutHandler delivers each record to every child handler.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, h := range f.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}

// redactHandler replaces the values of configured keys with "***". It also
// descends into group attributes, maps and JSON-encoded string or byte
// payloads, so request bodies logged wholesale still get their password and
// otp fields scrubbed.
type redactHandler struct {
	next slog.Handler
	keys map[string]struct{}
}

func (h *redactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactHandler) Handle(ctx context.Context, record slog.Record) error {
	if len(h.keys) == 0 {
		return h.next.Handle(ctx, record)
	}

	clean := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		clean.AddAttrs(h.redact(attr))
		return true
	})
	return h.next.Handle(ctx, clean)
}

func (h *redactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &redactHandler{next: h.next.WithAttrs(attrs), keys: h.keys}
}

func (h *redactHandler) WithGroup(name string) slog.Handler {
	return &redactHandler{next: h.next.WithGroup(name), keys: h.keys}
}

func (h *redactHandler) redact(attr slog.Attr) slog.Attr {
	if _, hit := h.keys[strings.ToLower(attr.Key)]; hit {
		return slog.String(attr.Key, "***")
	}

	switch attr.Value.Kind() {
	case slog.KindGroup:
		group := attr.Value.Group()
		masked := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			masked = append(masked, h.redact(ga))
		}
		attr.Value = slog.GroupValue(masked...)

	case slog.KindString:
		if out, ok := h.redactJSON([]byte(attr.Value.String())); ok {
			attr.Value = slog.StringValue(out)
		}

	case slog.KindAny:
		switch v := attr.Value.Any().(type) {
		case map[string]any:
			attr.Value = slog.AnyValue(h.redactValue(v))
		case map[string]string:
			generic := make(map[string]any, len(v))
			for k, s := range v {
				generic[k] = s
			}
			attr.Value = slog.AnyValue(h.redactValue(generic))
		case []any:
			attr.Value = slog.AnyValue(h.redactValue(v))
		case []byte:
			if out, ok := h.redactJSON(v); ok {
				attr.Value = slog.StringValue(out)
			}
		}
	}
	return attr
}

func (h *redactHandler) redactJSON(payload []byte) (string, bool) {
	if len(payload) == 0 || (payload[0] != '{' && payload[0] != '[') {
		return "", false
	}
	var body any
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", false
	}
	out, err := json.Marshal(h.redactValue(body))
	if err != nil {
		return "", false
	}
	return string(out), true
}

func (h *redactHandler) redactValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, inner := range val {
			if _, hit := h.keys[strings.ToLower(k)]; hit {
				masked[k] = "***"
			} else {
				masked[k] = h.redactValue(inner)
			}
		}
		return masked
	case []any:
		masked := make([]any, len(val))
		for i, inner := range val {
			masked[i] = h.redactValue(inner)
		}
		return masked
	default:
		return v
	}
}

func normalizeMaskKeys(fields []string) map[string]struct{} {
	keys := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			keys[f] = struct{}{}
		}
	}
	return keys
}
