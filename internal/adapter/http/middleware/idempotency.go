package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/idempotency"
	"ar-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// IdempotencyKeyHeader is the client-supplied header backing C3's HTTP
// idempotency layer. Requests without it pass through unprotected; the
// domain-level reference_id/source_event_id uniqueness constraints remain
// the backstop for retried writes.
const IdempotencyKeyHeader = "Idempotency-Key"

// cachedResponse is the envelope stored in the Redis cache, carrying the
// status code and the original request hash alongside the body so a
// cache-hit replay neither guesses at the status nor skips the hash check.
type cachedResponse struct {
	Status      int    `json:"status"`
	Body        []byte `json:"body"`
	RequestHash string `json:"request_hash"`
}

// bodyCaptureWriter tees everything written to the client into an
// in-memory buffer so IdempotencyKey can persist the exact response bytes
// behind the key once the handler completes.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// IdempotencyKey guards state-changing endpoints against duplicate
// submission under a client-supplied Idempotency-Key: first lookup hits
// the Redis cache, falling back to the Postgres record on a cache miss,
// exactly as spec §4.3 describes. A key reused with a body that
// canonicalizes to a different hash is rejected rather than replayed.
// Must run after JWTAuth so tenantIDFromContext has a value.
func IdempotencyKey(cache ports.IdempotencyCache, repo ports.IdempotencyRepository, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		tid, ok := idempotencyTenantID(c)
		if !ok {
			c.Next()
			return
		}

		rawBody, err := c.GetRawData()
		if err != nil {
			response.Error(c, apperror.Validation("unable to read request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(rawBody))

		reqHash, err := idempotency.Hash(rawBody)
		if err != nil {
			response.Error(c, apperror.Validation("request body is not valid JSON"))
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		if replayIfRecorded(c, ctx, cache, repo, tid, key, reqHash, log) {
			return
		}

		capture := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		status := capture.Status()
		if status < 200 || status >= 300 {
			return
		}
		body := capture.buf.Bytes()

		record := &domain.IdempotencyRecord{
			TenantID:     tid,
			Key:          key,
			RequestHash:  reqHash,
			StatusCode:   status,
			ResponseBody: body,
			CreatedAt:    time.Now().UTC(),
			ExpiresAt:    time.Now().UTC().Add(ttl),
		}
		if err := repo.Create(ctx, record); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotency: failed to persist record")
			return
		}
		if encoded, err := json.Marshal(cachedResponse{Status: status, Body: body, RequestHash: reqHash}); err == nil {
			if err := cache.Set(ctx, tid, key, encoded, ttl); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("idempotency: failed to populate cache")
			}
		}
	}
}

// idempotencyTenantID reads the tenant ID JWTAuth placed in the gin
// context. Returns false if the request reached this middleware
// unauthenticated (e.g. webhook ingestion, which has no tenant context key
// and relies on event-id dedupe instead).
func idempotencyTenantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(CtxTenantID)
	if !exists {
		return uuid.UUID{}, false
	}
	tid, ok := v.(uuid.UUID)
	return tid, ok
}

// replayIfRecorded checks the cache then the database for a prior response
// under (tenantID, key). On a hit with a matching request hash it writes
// the stored response verbatim and returns true. On a hit with a mismatched
// hash it aborts the request as a client error. On a miss it returns false
// so the caller proceeds to invoke the handler.
func replayIfRecorded(c *gin.Context, ctx context.Context, cache ports.IdempotencyCache, repo ports.IdempotencyRepository, tid uuid.UUID, key, reqHash string, log zerolog.Logger) bool {
	if cached, err := cache.Get(ctx, tid, key); err == nil && cached != nil {
		var decoded cachedResponse
		if err := json.Unmarshal(cached, &decoded); err == nil {
			if decoded.RequestHash != reqHash {
				response.Error(c, apperror.ErrDuplicateRequest())
				c.Abort()
				return true
			}
			c.Data(decoded.Status, "application/json", decoded.Body)
			c.Abort()
			return true
		}
	}

	record, err := repo.Get(ctx, tid, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("idempotency: lookup failed, proceeding without replay")
		return false
	}
	if record == nil {
		return false
	}
	if record.RequestHash != reqHash {
		response.Error(c, apperror.ErrDuplicateRequest())
		c.Abort()
		return true
	}

	if encoded, err := json.Marshal(cachedResponse{Status: record.StatusCode, Body: record.ResponseBody, RequestHash: record.RequestHash}); err == nil {
		cache.Set(ctx, tid, key, encoded, time.Until(record.ExpiresAt))
	}
	c.Data(record.StatusCode, "application/json", record.ResponseBody)
	c.Abort()
	return true
}
