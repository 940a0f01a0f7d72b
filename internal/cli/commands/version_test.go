package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_Output(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0", "atomview v0.1.0\n"},
		{"dev", "atomview vdev\n"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			out, err := execute(t, NewVersionCommand(tt.version))
			require.NoError(t, err)

			assert.Equal(t, tt.want+
				"Elements:   118 of 118 (Z 1-118)\n"+
				"Exceptions: 20\n", out)
		})
	}
}

func TestVersion_RejectsArgs(t *testing.T) {
	_, err := execute(t, NewVersionCommand("test"), "extra")
	assert.Error(t, err)
}
