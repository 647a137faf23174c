// Package flagx lets independent loaders parse only the command-line flags
// they own, so the JSON loader and the flag loader never trip over each
// other's flags.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the named flags.
//
// Names are given without dashes ("c", "config"); both "-name" and "--name"
// spellings are recognised, in either of these forms:
//
//	-d garage.db
//	--db=garage.db
//
// A value is only consumed when the following argument does not start with
// a dash. The result is never nil.
func FilterArgs(args []string, names []string) []string {
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[strings.TrimLeft(n, "-")] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if _, ok := known[name]; !ok {
			continue
		}

		filtered = append(filtered, arg)
		if hasValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag returns the path given with -c or -config, or "" when
// neither is present. Later occurrences win.
func ConfigFileFlag() string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"c", "config"}))

	return path
}
