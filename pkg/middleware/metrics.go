package middleware

import (
	"net/http"
	"strconv"
	"sync/atomic"

	"dealersite/pkg/metrics"
)

// Metrics counts responses by status code.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			code := int(atomic.LoadInt32(&sw.code))
			if code == 0 {
				code = http.StatusOK
			}
			metrics.HTTPResponses.WithLabelValues(strconv.Itoa(code)).Inc()
		})
	}
}

// statusWriter records the first status written. Later WriteHeader calls are
// forwarded so net/http can log the superfluous call as usual.
type statusWriter struct {
	http.ResponseWriter
	code int32
}

func (s *statusWriter) WriteHeader(code int) {
	atomic.CompareAndSwapInt32(&s.code, 0, int32(code))
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusWriter) Write(b []byte) (int, error) {
	atomic.CompareAndSwapInt32(&s.code, 0, http.StatusOK)
	return s.ResponseWriter.Write(b)
}

// Flush keeps streaming proxies working through the wrapper.
func (s *statusWriter) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
