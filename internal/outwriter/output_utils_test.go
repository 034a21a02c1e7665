package outwriter

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augmentcode/augmetrics/internal/contract"
)

func TestEngagementLabel(t *testing.T) {
	plain := &contract.Config{UseColors: false}
	assert.Equal(t, contract.EngagedValue, engagementLabel(true, plain))
	assert.Equal(t, contract.InactiveValue, engagementLabel(false, plain))

	colored := &contract.Config{UseColors: true}
	assert.Contains(t, engagementLabel(true, colored), contract.EngagedValue)
	assert.Contains(t, engagementLabel(false, colored), contract.InactiveValue)
}

func TestGetMaxIdentityWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow terminal clamps to minimum", 40, 12},
		{"mid terminal uses available space", 100, 35},
		{"wide terminal caps at maximum", 200, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, getMaxIdentityWidth(cfg))
		})
	}
}

func TestRequireOutputFile(t *testing.T) {
	assert.Error(t, requireOutputFile(&contract.Config{}, "parquet"))
	assert.NoError(t, requireOutputFile(&contract.Config{OutputFile: "out.parquet"}, "parquet"))
}

func TestWriteWithFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "out.txt")

	err := writeWithFile(outputFile, func(w io.Writer) error {
		_, err := w.Write([]byte("hello\n"))
		return err
	}, "Wrote text")
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestWriteJSONIndentation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}
