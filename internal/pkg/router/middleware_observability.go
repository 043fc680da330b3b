package router

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
)

// Request and response bodies are logged up to this size.
const maxLoggedBodyBytes = 32 * 1024

// middlewareObservability traces every request, records the request counter
// and duration histogram, and logs the request and response bodies with
// configured fields masked.
func middlewareObservability(cfg config.Config, ins instrument.Instrumentation) Middleware {
	maskKeys := maskKeysFromConfig(cfg)
	tracer := ins.Tracer("http.server")
	meter := ins.Meter("http.server")

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests received"))
	if err != nil {
		slog.Error("create http request counter", "error", err)
	}
	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request duration in milliseconds"))
	if err != nil {
		slog.Error("create http duration histogram", "error", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			start := time.Now()

			ctx, span := tracer.Start(r.Context(), r.Method+" "+route,
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.HTTPRouteKey.String(route),
				),
			)
			defer span.End()

			reqBody := captureRequestBody(r)
			slog.InfoContext(ctx, "request received",
				"method", r.Method,
				"path", route,
				"uri", r.RequestURI,
				"headers", maskHeaders(r.Header, maskKeys),
				"body", decodeBodyForLog(r.Header.Get("Content-Type"), reqBody, maskKeys),
			)

			rec := &responseRecorder{ResponseWriter: w, body: &bytes.Buffer{}}
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.statusOrOK()
			elapsed := time.Since(start)

			attrs := []attribute.KeyValue{
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRouteKey.String(route),
				semconv.HTTPResponseStatusCodeKey.Int(status),
			}
			span.SetAttributes(attrs...)
			span.SetAttributes(
				semconv.NetworkProtocolVersionKey.String(r.Proto),
				semconv.ServerAddressKey.String(r.Host),
				attribute.String("http.target", r.URL.Path),
				attribute.String("http.user_agent", r.UserAgent()),
				attribute.Int("http.response_content_length", rec.bytes),
			)

			if rec.err != nil {
				span.RecordError(rec.err)
			}
			switch {
			case status >= 500 && rec.err != nil:
				span.SetStatus(codes.Error, rec.err.Error())
			case status >= 500:
				span.SetStatus(codes.Error, http.StatusText(status))
			default:
				span.SetStatus(codes.Ok, "")
			}

			if requests != nil {
				requests.Add(ctx, 1, metric.WithAttributes(attrs...))
			}
			if duration != nil {
				duration.Record(ctx, float64(elapsed.Milliseconds()), metric.WithAttributes(attrs...))
			}

			slog.InfoContext(ctx, "response sent",
				"method", r.Method,
				"path", route,
				"uri", r.RequestURI,
				"status", status,
				"bytes", rec.bytes,
				"latency_ms", elapsed.Milliseconds(),
				"body", rec.loggedBody(maskKeys),
			)
		})
	}
}

// responseRecorder captures status, size, a bounded copy of the body and the
// handler error while forwarding everything to the real writer. It passes
// through Flush, Hijack and Push so streaming endpoints keep working.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
	body   *bytes.Buffer
	capped bool
	err    error
}

func (w *responseRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if w.body != nil && !w.capped && len(p) > 0 {
		room := maxLoggedBodyBytes - w.body.Len()
		switch {
		case room <= 0:
			w.capped = true
		case len(p) > room:
			w.body.Write(p[:room])
			w.capped = true
		default:
			w.body.Write(p)
		}
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// SetError is called by the endpoint wrapper so the span can record the
// handler error.
func (w *responseRecorder) SetError(err error) { w.err = err }

func (w *responseRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

//nolint:err113 // it use dynamic error
func (w *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	return h.Hijack()
}

func (w *responseRecorder) Push(target string, opts *http.PushOptions) error {
	if p, ok := w.ResponseWriter.(http.Pusher); ok {
		return p.Push(target, opts)
	}
	return http.ErrNotSupported
}

func (w *responseRecorder) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *responseRecorder) loggedBody(maskKeys map[string]struct{}) any {
	if w.body == nil {
		return nil
	}

	var body any
	var parsed any
	switch {
	case json.Unmarshal(w.body.Bytes(), &parsed) == nil:
		body = maskValues(parsed, maskKeys)
	case utf8.Valid(w.body.Bytes()):
		body = w.body.String()
	case w.body.Len() > 0:
		body = "<binary body omitted>"
	}

	if w.capped {
		body = map[string]any{"body": body, "truncated": true}
	}
	return body
}

// captureRequestBody reads up to the logging cap and splices what was read
// back in front of the remaining body so handlers see the full stream.
func captureRequestBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}

	//nolint:errcheck // best effort for logging only
	buf, _ := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodyBytes+1))
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(buf), r.Body))
	if len(buf) > maxLoggedBodyBytes {
		return buf[:maxLoggedBodyBytes]
	}
	return buf
}

func decodeBodyForLog(contentType string, body []byte, maskKeys map[string]struct{}) any {
	if len(body) == 0 {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err == nil {
		return maskValues(parsed, maskKeys)
	}

	if strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		if values, err := url.ParseQuery(string(body)); err == nil {
			masked := make(map[string]any, len(values))
			for k, v := range values {
				switch {
				case hasMaskKey(maskKeys, k):
					masked[k] = "***"
				case len(v) == 1:
					masked[k] = v[0]
				default:
					masked[k] = v
				}
			}
			return masked
		}
	}

	if !utf8.Valid(body) {
		return "<binary body omitted>"
	}
	if len(body) > maxLoggedBodyBytes {
		return string(body[:maxLoggedBodyBytes]) + "...(truncated)"
	}
	return string(body)
}

func maskHeaders(headers http.Header, maskKeys map[string]struct{}) http.Header {
	if len(maskKeys) == 0 {
		return headers
	}
	out := headers.Clone()
	for key := range out {
		if hasMaskKey(maskKeys, key) {
			out.Set(key, "***")
		}
	}
	return out
}

func maskValues(v any, maskKeys map[string]struct{}) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, inner := range val {
			if hasMaskKey(maskKeys, k) {
				masked[k] = "***"
			} else {
				masked[k] = maskValues(inner, maskKeys)
			}
		}
		return masked
	case []any:
		masked := make([]any, len(val))
		for i, inner := range val {
			masked[i] = maskValues(inner, maskKeys)
		}
		return masked
	default:
		return v
	}
}

func hasMaskKey(maskKeys map[string]struct{}, key string) bool {
	_, found := maskKeys[strings.ToLower(key)]
	return found
}

func maskKeysFromConfig(cfg config.Config) map[string]struct{} {
	keys := make(map[string]struct{})
	if cfg == nil {
		return keys
	}
	for _, field := range cfg.GetArray("instrument.log_mask_fields") {
		if field = strings.TrimSpace(strings.ToLower(field)); field != "" {
			keys[field] = struct{}{}
		}
	}
	return keys
}
