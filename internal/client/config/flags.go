package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/garden/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-n int      garden page size
//	-v int      viewport height, in seeds
//	-f string   local data directory
//	-i int      online check interval (in seconds)
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so unknown flags are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-v", "-f", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.IntVar(&cfg.PageSize, "n", cfg.PageSize, "garden page size")
	fs.IntVar(&cfg.ViewportHeight, "v", cfg.ViewportHeight, "viewport height")
	fs.StringVar(&cfg.DataDir, "f", cfg.DataDir, "local data directory")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
