// This file contains the middleware wrapped around every route: request IDs,
// access logging, and panic recovery.
//
// In Go, middleware is just a function that takes an http.Handler and
// returns a new http.Handler. The returned handler does some work, calls
// next.ServeHTTP to pass the request along, and can do more work after it
// returns. Wrapping functions inside each other builds the chain.
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// ctxKey is an unexported type used as the context key. Because no other
// package can name this type, no other package can collide with the value
// stored under it, which is the usual Go convention for context keys.
type ctxKey struct{}

// RequestIDFrom returns the request ID stored by the RequestID middleware,
// or "" if there is none.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// RequestID tags each request with an ID. A valid UUID sent by the client is
// reused; anything else is replaced with a fresh one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// statusRecorder remembers the status code written by the wrapped handler.
//
// http.ResponseWriter doesn't expose the status after it is written, so we
// embed the real writer and intercept WriteHeader/Write. Embedding means all
// the other methods (Header, etc.) are promoted from the inner writer for
// free.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.written {
		s.status = code
		s.written = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.written {
		s.status = http.StatusOK
		s.written = true
	}
	return s.ResponseWriter.Write(b)
}

// Logging writes one log line per request.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s request_id=%s",
			r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond), RequestIDFrom(r.Context()))
	})
}

// Recover turns a panic in a handler into a generic 500 so the server keeps
// serving. The panic value is logged but never sent to the client.
//
// A deferred function runs even while a panic unwinds the stack, and
// recover() called inside it stops the panic and returns its value. If the
// handler had already started writing, the status line is gone and all we
// can do is log. http.ErrAbortHandler is re-raised because net/http uses it
// on purpose to abort a response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				log.Printf("panic serving %s %s: %v request_id=%s", r.Method, r.URL.Path, p, RequestIDFrom(r.Context()))
				if !rec.written {
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
