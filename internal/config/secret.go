package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const jwtSecretKey = "JWT_SECRET"

// EnsureJWTSecret resolves the token signing secret. If JWT_SECRET is set in
// the environment it is used as-is. Otherwise a fresh 48-byte secret is
// generated and written back to envPath so the same secret survives
// restarts. Load() calls this once during startup, before the HTTP server
// accepts connections, so no two requests can race the generation.
func EnsureJWTSecret(envPath string) (string, error) {
	if s := os.Getenv(jwtSecretKey); s != "" {
		return s, nil
	}

	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate jwt secret: %w", err)
	}
	secret := hex.EncodeToString(buf)

	env, err := godotenv.Read(envPath)
	if err != nil {
		// Missing env file is fine; we create it below.
		env = map[string]string{}
	}
	env[jwtSecretKey] = secret

	if err := godotenv.Write(env, envPath); err != nil {
		return "", fmt.Errorf("persist jwt secret to %s: %w", envPath, err)
	}

	if err := os.Setenv(jwtSecretKey, secret); err != nil {
		return "", err
	}
	return secret, nil
}
