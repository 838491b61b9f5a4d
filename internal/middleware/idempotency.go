package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// cachedResponse is the replay record stored in Redis. The booking endpoint
// answers 201, so the original status code has to survive alongside the body.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// Idempotency replays the cached response for a repeated mutating request
// carrying the same X-Correlation-ID. The public booking form retries on
// flaky mobile connections; a retry must not create a duplicate booking.
func Idempotency(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPatch && c.Method() != fiber.MethodPut {
			return c.Next()
		}

		correlationID := c.Get("X-Correlation-ID")
		if correlationID == "" {
			// No correlation ID, no replay protection
			return c.Next()
		}

		key := fmt.Sprintf("idempotency:%s", correlationID)

		cached, err := redisClient.Get(c.UserContext(), key).Bytes()
		if err == nil && len(cached) > 0 {
			var stored cachedResponse
			if err := json.Unmarshal(cached, &stored); err == nil && stored.Status != 0 {
				c.Set("X-Idempotent-Replay", "true")
				c.Set("Content-Type", "application/json")
				return c.Status(stored.Status).Send(stored.Body)
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Only successful responses are worth replaying
		statusCode := c.Response().StatusCode()
		if statusCode >= 200 && statusCode < 300 {
			body := c.Response().Body()
			if len(body) > 0 {
				bodyCopy := make([]byte, len(body))
				copy(bodyCopy, body)
				stored, err := json.Marshal(cachedResponse{Status: statusCode, Body: bodyCopy})
				if err == nil {
					go func() {
						bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
						defer cancel()
						redisClient.Set(bgCtx, key, stored, ttl)
					}()
				}
			}
		}

		return nil
	}
}
