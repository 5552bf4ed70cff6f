package config

import (
	"flag"
	"os"
	"time"

	"github.com/alaaldainabdo/scalable-login-system/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the auth API
//	-f string   session database file
//	-t int      request timeout in seconds
//	-i int      online check interval in seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "a", config.ServerURL, "base URL of the auth API")
	fs.StringVar(&config.SessionDBPath, "f", config.SessionDBPath, "session database file")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	checkInterval := fs.Int("i", int(config.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	config.OnlineCheckInterval = time.Duration(*checkInterval) * time.Second
}
