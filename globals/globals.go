package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(jwtSecretFromEnv())

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "dev_only_secret" // overridden in production via JWT_SECRET
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const EmailKey ContextKey = "email"

var Ctx = context.Background()
