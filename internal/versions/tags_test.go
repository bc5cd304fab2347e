package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageTag(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"2.0.0", "v2_0_0"},
		{"2.0.0-p195", "v2_0_0_195"},
		{"1.9.3-p0", "v1_9_3_0"},
		{"2.1", "v2.1"},
		{"2.1.0-preview1", "v2.1.0-preview1"},
		{"10.0.0", "v10.0.0"},
		{"2.0.0-p", "v2.0.0-p"},
		{" 2.0.0", "v 2.0.0"},
		{"2.0.0\n", "v2.0.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageTag(tt.version))
		})
	}
}

func TestFrameworkTag(t *testing.T) {
	assert.Equal(t, "v4.0.0-rc.1", FrameworkTag("4.0.0-rc.1"))
	assert.Equal(t, "v4.0.0", FrameworkTag("4.0.0"))
	assert.Equal(t, "v3_2_13", FrameworkTag("3_2_13"))
}
