// Package flagx extracts individual flags from a command line before the
// full flag set is known.
package flagx

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// FilterArgs returns the arguments that belong to one of allowedFlags,
// together with their values.
//
// Supported forms:
//
//	-c conf.json
//	--config=conf.json
//
// A following argument is taken as the value unless it starts with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigPath returns the JSON config file named by -c or --config, or ""
// when none is given. The last occurrence wins. Other arguments are ignored,
// so this can run before the command's own flags are parsed.
func ConfigPath(args []string) string {
	filtered := FilterArgs(args, []string{"-c", "--config"})

	var path string
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&path, "config", "c", "", "path to JSON config file")
	_ = fs.Parse(filtered)

	return path
}
