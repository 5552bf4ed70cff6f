package config

import (
	"flag"
	"os"
	"time"

	"github.com/alaaldainabdo/scalable-login-system/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":4000")
//	-g string   gRPC health bind address (e.g. ":50051")
//	-d string   store DSN
//	-s string   JWT HMAC secret key
//	-o string   allowed CORS origins, comma-separated
//	-l string   log level
//	-i int      store health check interval, seconds; only applied when given
//
// os.Args is filtered through flagx.FilterArgs first so -c and -env, which
// belong to other loaders, do not make parsing fail.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-s", "-o", "-l", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to serve HTTP on")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to serve gRPC health on")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")
	fs.StringVar(&config.CORSAllowedOrigins, "o", config.CORSAllowedOrigins, "allowed CORS origins")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	healthCheckInterval := fs.Int("i", int(config.HealthCheckInterval.Seconds()), "store health check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			config.HealthCheckInterval = time.Duration(*healthCheckInterval) * time.Second
		}
	})
}
