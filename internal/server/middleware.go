package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/models"
)

type contextKey string

const userContextKey contextKey = "user"

// Authenticate resolves the Authorization bearer token to a user and stores
// it on the request context. Requests without a valid token get a 401.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := db.UserForToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestUser returns the authenticated user placed on the context by
// Authenticate. Handlers behind the auth middleware can rely on it.
func requestUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

type clientRequests struct {
	count    int
	lastSeen time.Time
}

type rateLimiter struct {
	requests map[string]*clientRequests
	mu       sync.Mutex
}

const (
	maxRequests    = 300             // Maximum requests per window
	windowDuration = time.Minute * 5 // Window duration
)

var limiter = &rateLimiter{
	requests: make(map[string]*clientRequests),
}

// RateLimit applies a fixed-window per-client limit keyed by remote address.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := r.RemoteAddr

		limiter.mu.Lock()

		// Clean up old entries
		now := time.Now()
		for ip, req := range limiter.requests {
			if now.Sub(req.lastSeen) > windowDuration {
				delete(limiter.requests, ip)
			}
		}

		client, exists := limiter.requests[clientIP]
		if !exists {
			client = &clientRequests{lastSeen: now}
			limiter.requests[clientIP] = client
		}

		if now.Sub(client.lastSeen) > windowDuration {
			client.count = 0
			client.lastSeen = now
		}

		if client.count >= maxRequests {
			limiter.mu.Unlock()
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(maxRequests))
			w.Header().Set("X-RateLimit-Remaining", "0")
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		client.count++
		client.lastSeen = now
		remaining := maxRequests - client.count
		limiter.mu.Unlock()

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		next.ServeHTTP(w, r)
	})
}
