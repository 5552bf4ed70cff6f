package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/alaaldainabdo/scalable-login-system/internal/flagx"
)

// Environment variable names read by parseEnv.
const (
	EnvHTTPAddr           = "HTTP_ADDR"
	EnvGRPCAddr           = "GRPC_ADDR"
	EnvDatabaseDSN        = "DATABASE_DSN"
	EnvSecretKey          = "JWT_SECRET"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvLogLevel           = "LOG_LEVEL"
)

// parseEnv loads the dotenv file named by -env (default ".env") into the
// process environment, then overlays every non-empty variable onto config.
// Variables already set in the environment take precedence over the file.
// A missing dotenv file is not an error; a malformed one panics.
func parseEnv(config *Config) {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, os.Getenv(EnvHTTPAddr))
	setString(&config.EndpointAddrGRPC, os.Getenv(EnvGRPCAddr))
	setString(&config.DatabaseDSN, os.Getenv(EnvDatabaseDSN))
	setString(&config.SecretKey, os.Getenv(EnvSecretKey))
	setString(&config.CORSAllowedOrigins, os.Getenv(EnvCORSAllowedOrigins))
	setString(&config.LogLevel, os.Getenv(EnvLogLevel))
}
