package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Output receives all debug logging.
var Output io.Writer = os.Stderr

// Logf writes to Output. Container arguments and values with a JSON
// form are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number, json.Marshaler:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(Output, msg, args...)
}

// LogAny writes v as one line of JSON, falling back to its %v form.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(Output, "%v\n", v)
		return
	}
	Output.Write(append(d, '\n'))
}
