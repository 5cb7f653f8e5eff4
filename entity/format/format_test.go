package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalText(t *testing.T) {
	for _, f := range []Format{HTML, Png, Csv, JSON, ASCII} {
		got, err := UnmarshalText(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := UnmarshalText("svg")
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".html", HTML.Extension())
	assert.Equal(t, ".png", Png.Extension())
	assert.Equal(t, ".txt", ASCII.Extension())
}
