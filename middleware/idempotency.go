package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	ReplayedHeader    = "X-Idempotency-Replayed"
)

// IdempotencyStore remembers responses of keyed POST requests so a retried
// checkout or booking does not run twice.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]*storedResponse
	ttl     time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
	proxies TrustedProxies
}

type storedResponse struct {
	status    int
	header    http.Header
	body      []byte
	expiresAt time.Time
	done      chan struct{}
}

func (e *storedResponse) inFlight() bool {
	select {
	case <-e.done:
		return false
	default:
		return true
	}
}

type IdempotencyConfig struct {
	TTL     time.Duration
	Cleanup time.Duration
	// TrustedProxies resolve the client address of anonymous requests.
	TrustedProxies TrustedProxies
}

func NewIdempotencyStore(cfg IdempotencyConfig) *IdempotencyStore {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Cleanup <= 0 {
		cfg.Cleanup = time.Hour
	}
	s := &IdempotencyStore{
		entries: make(map[string]*storedResponse),
		ttl:     cfg.TTL,
		now:     time.Now,
		stop:    make(chan struct{}),
		proxies: cfg.TrustedProxies,
	}
	go s.cleanupLoop(cfg.Cleanup)
	return s
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (s *IdempotencyStore) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *IdempotencyStore) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *IdempotencyStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, e := range s.entries {
		if !e.inFlight() && now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}

// Len reports the number of remembered keys, in flight ones included.
func (s *IdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// claim returns a finished entry to replay, or registers a new in-flight
// entry owned by the caller. Concurrent requests with the same key wait for
// the owner.
func (s *IdempotencyStore) claim(ctx context.Context, key string) (entry *storedResponse, owner bool, err error) {
	for {
		s.mu.Lock()
		e, ok := s.entries[key]
		switch {
		case !ok || (!e.inFlight() && s.now().After(e.expiresAt)):
			e = &storedResponse{done: make(chan struct{})}
			s.entries[key] = e
			s.mu.Unlock()
			return e, true, nil
		case e.inFlight():
			s.mu.Unlock()
			select {
			case <-e.done:
			case <-ctx.Done():
				return nil, false, ctx.Err()
			}
		default:
			s.mu.Unlock()
			return e, false, nil
		}
	}
}

// finish publishes the owner's response. Server errors are forgotten so the
// client can retry with the same key.
func (s *IdempotencyStore) finish(key string, e *storedResponse, status int, header http.Header, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status >= http.StatusInternalServerError {
		delete(s.entries, key)
	} else {
		e.status = status
		e.header = header
		e.body = body
		e.expiresAt = s.now().Add(s.ttl)
	}
	close(e.done)
}

func fingerprint(caller, key, method, path string, body []byte) string {
	h := sha256.New()
	for _, part := range [][]byte{[]byte(caller), []byte(key), []byte(method), []byte(path), body} {
		h.Write(part)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

type recordingWriter struct {
	*responseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.responseWriter.Write(b)
}

// Idempotency replays the stored response for POST requests that repeat an
// Idempotency-Key. caller identifies the authenticated principal; requests
// without one are keyed by client IP.
func Idempotency(store *IdempotencyStore, caller func(*http.Request) string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idemKey := r.Header.Get(IdempotencyHeader)
			if r.Method != http.MethodPost || idemKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, "BAD_REQUEST", "could not read request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			who := ""
			if caller != nil {
				who = caller(r)
			}
			if who == "" {
				who = store.proxies.ClientIP(r)
			}
			key := fingerprint(who, idemKey, r.Method, r.URL.Path, body)

			entry, owner, err := store.claim(r.Context(), key)
			if err != nil {
				// The duplicate's client went away while the original ran.
				return
			}
			if !owner {
				for k, v := range entry.header {
					if k == RequestIDHeader {
						continue
					}
					w.Header()[k] = append([]string(nil), v...)
				}
				w.Header().Set(ReplayedHeader, "true")
				w.WriteHeader(entry.status)
				_, _ = w.Write(entry.body)
				return
			}

			rec := &recordingWriter{responseWriter: wrap(w)}
			defer func() {
				status := rec.status
				if p := recover(); p != nil {
					store.finish(key, entry, http.StatusInternalServerError, nil, nil)
					panic(p)
				}
				store.finish(key, entry, status, w.Header().Clone(), rec.body.Bytes())
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
