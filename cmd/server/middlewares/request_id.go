package middlewares

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

// HeaderRequestID is the response header carrying the per-request id.
const HeaderRequestID = "X-Request-Id"

var entropyPool = sync.Pool{
	New: func() any {
		return ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	},
}

// RequestID tags every request with a ULID unless the client already sent
// one. The id lands in ctx.Locals("requestID") and in the response header,
// so log lines and clients can correlate.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			entropy := entropyPool.Get().(*ulid.MonotonicEntropy)
			id = ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
			entropyPool.Put(entropy)
		}

		c.Locals("requestID", id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}
