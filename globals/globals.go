package globals

import (
	"context"
	"os"
)

var (
	// JwtSecret verifies tokens issued by the commerce backend's JWT login
	// endpoint. Shared secret, set via env.
	JwtSecret = []byte(os.Getenv("JWT_SECRET"))
)

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
