package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// statusWriter wraps http.ResponseWriter to capture the response status code.
// Inner middleware may hand it a derived context so outer loggers can see
// values set further down the chain.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	inner       context.Context
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusWriter) ctx(r *http.Request) context.Context {
	if w.inner != nil {
		return w.inner
	}
	return r.Context()
}

// shareContext records ctx on w when w was created by an outer middleware.
func shareContext(w http.ResponseWriter, ctx context.Context) {
	if sw, ok := w.(*statusWriter); ok {
		sw.inner = ctx
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
