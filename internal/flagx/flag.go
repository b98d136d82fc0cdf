// Package flagx helps config parsing coexist with flags owned by other
// components (including the test runner) by filtering os.Args down to a
// known set before handing it to a flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Filter keeps only the flags named in allowed, together with their values.
// Both "-f value" and "-f=value" forms are recognized.
func Filter(args []string, allowed ...string) []string {
	known := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		known[name] = true
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if name, _, found := strings.Cut(arg, "="); found {
			if known[name] {
				kept = append(kept, arg)
			}
			continue
		}
		if !known[arg] {
			continue
		}
		kept = append(kept, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			kept = append(kept, args[i+1])
			i++
		}
	}
	return kept
}

// ConfigFilePath extracts the JSON config file path given via -c or -config,
// or returns "" when neither is present. Other flags are ignored.
func ConfigFilePath() string {
	var path string

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(Filter(os.Args[1:], "-c", "-config"))

	return path
}
