package logger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKeyRequestLoggerType struct{}

var contextKeyRequestLogger = &contextKeyRequestLoggerType{}

const (
	requestIDLoggerKey = "requestID"
	identityLoggerKey  = "identity"

	// RequestIDHeader is read from inbound requests and echoed on responses.
	RequestIDHeader = "X-Request-ID"
)

// InitLogger configures the standard logger. format is "text" or "json".
func InitLogger(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{TimestampFormat: "2006-01-02 15:04:05", FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	logrus.SetLevel(lvl)
	return nil
}

// Default returns a logger without a request ID.
func Default() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}

// AddRequestID attaches a request scoped logger to every request. An inbound
// X-Request-ID is kept, otherwise a new one is generated.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _ := ContextWithRequestID(r.Context(), r.Header.Get(RequestIDHeader))
		w.Header().Set(RequestIDHeader, RequestIDFromContext(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContextWithRequestID returns a context carrying a logger tagged with id. An
// empty id gets a fresh uuid. A context that already has a logger is returned as is.
func ContextWithRequestID(ctx context.Context, id string) (context.Context, *logrus.Entry) {
	if ctx == nil {
		ctx = context.Background()
	} else if rlog := loggerFromContext(ctx); rlog != nil {
		return ctx, rlog
	}
	if id == "" {
		id = uuid.NewString()
	}
	rlog := logrus.WithField(requestIDLoggerKey, id)
	return context.WithValue(ctx, contextKeyRequestLogger, rlog), rlog
}

// ContextWithLoggerIdentity adds the caller identity to the context logger.
func ContextWithLoggerIdentity(ctx context.Context, identity string) (context.Context, *logrus.Entry) {
	ctx, rlog := ContextWithRequestID(ctx, "")
	rlog = rlog.WithField(identityLoggerKey, identity)
	return context.WithValue(ctx, contextKeyRequestLogger, rlog), rlog
}

func loggerFromContext(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return nil
	}
	rlog, _ := ctx.Value(contextKeyRequestLogger).(*logrus.Entry)
	return rlog
}

// FromContext returns the logger from the context, or the default logger.
func FromContext(ctx context.Context) *logrus.Entry {
	if rlog := loggerFromContext(ctx); rlog != nil {
		return rlog
	}
	return Default()
}

// RequestIDFromContext returns the request id for the given context.
func RequestIDFromContext(ctx context.Context) string {
	rlog := loggerFromContext(ctx)
	if rlog == nil {
		return ""
	}
	id, _ := rlog.Data[requestIDLoggerKey].(string)
	return id
}

// IdentityFromContext returns the authenticated subject, if any.
func IdentityFromContext(ctx context.Context) string {
	rlog := loggerFromContext(ctx)
	if rlog == nil {
		return ""
	}
	id, _ := rlog.Data[identityLoggerKey].(string)
	return id
}
