package logutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/enigma/pkg/logutils"
)

func TestShortCallerFormatter(t *testing.T) {
	tests := []struct {
		name string
		file string
		line int
		want string
	}{
		{"absolute path", "/home/user/enigma/pkg/enigma/machine.go", 42, "machine.go:42"},
		{"relative path", "internal/rest/router.go", 7, "router.go:7"},
		{"bare file", "main.go", 1, "main.go:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logutils.ShortCallerFormatter(0, tt.file, tt.line))
		})
	}
}
