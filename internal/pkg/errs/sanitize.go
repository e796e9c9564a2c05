package errs

import (
	"fmt"
	"strings"
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize renders v for an error message and keeps it on a single line.
func sanitize(v any) string {
	return newlineReplacer.Replace(fmt.Sprintf("%v", v))
}
