package config

import (
	"flag"
	"os"

	"inkwell/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   data directory for persisted collections
//	-e string   application environment ("dev" or "prod")
//
// Args are filtered to the flags handled here so parsing does not collide
// with flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.Filter(os.Args[1:], "-d", "-e")

	fs := flag.NewFlagSet("inkwell", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.AppEnv, "e", cfg.AppEnv, "application environment")
	_ = fs.Parse(args)
}
