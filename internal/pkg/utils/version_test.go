package utils

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	version := GetVersion()

	assert.NotEmpty(t, version.Version)
	assert.Equal(t, runtime.Version(), version.GoVersion)
}

func TestVersionShort(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"dev", "dev"},
		{"0123456789abcdef0123456789abcdef01234567", "0123456"},
		{"0123456789abcdef0123456789abcdef01234567 (modified)", "0123456 (modified)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Version{Version: tt.version}.Short())
	}
}
