package commands

import "strings"

// multiValueFlags maps every spelling of a multi-value flag to its canonical
// long form. The single-dash spellings would otherwise be parsed as
// shorthand clusters ("-mv" as -m -v).
var multiValueFlags = map[string]string{
	"--move":   "--move",
	"-mv":      "--move",
	"--remove": "--remove",
	"-rm":      "--remove",
}

// expandArgs rewrites space separated multi-value flags into repeated flags,
// so "--move a b -w" becomes "--move a --move b -w". Values run until the
// next argument starting with "-". Everything after "--" is left alone.
func expandArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}

		name, value, hasValue := strings.Cut(arg, "=")
		canonical, ok := multiValueFlags[name]
		if !ok {
			out = append(out, arg)
			continue
		}
		if hasValue {
			out = append(out, canonical+"="+value)
			continue
		}

		n := 0
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, canonical, args[i])
			n++
		}
		if n == 0 {
			// Let cobra report the missing value.
			out = append(out, canonical)
		}
	}
	return out
}
