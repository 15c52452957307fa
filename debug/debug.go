package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Codec bool
	Path  bool
	HTTP  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Codec = boolEnv("WIRECAT_DEBUG_CODEC")
	d.Path = boolEnv("WIRECAT_DEBUG_PATH")
	d.HTTP = boolEnv("WIRECAT_DEBUG_HTTP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Codec() bool {
	return d.Codec
}
func Path() bool {
	return d.Path
}
func HTTP() bool {
	return d.HTTP
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
