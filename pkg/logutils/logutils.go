package logutils

import (
	"path/filepath"
	"strconv"
)

// ShortCallerFormatter trims the caller path down to the file name,
// so that log lines carry "machine.go:42" instead of the absolute path.
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
