package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormConfirmer_FallsBackToPromptOnPipe(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"long yes", "YES\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, w, err := os.Pipe()
			require.NoError(t, err)
			defer r.Close()

			_, err = w.WriteString(tt.input)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			var out bytes.Buffer
			ok, err := FormConfirmer{In: r, Out: &out}.Confirm(context.Background(), "Delete 'Search'?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, "Delete 'Search'? [y/N]: ", out.String())
		})
	}
}
