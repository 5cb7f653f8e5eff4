package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalText(t *testing.T) {
	l, err := UnmarshalText("en")
	require.NoError(t, err)
	assert.Equal(t, English, l)

	l, err = UnmarshalText("ru")
	require.NoError(t, err)
	assert.Equal(t, Russian, l)

	_, err = UnmarshalText("de")
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	en := English.Labels()
	assert.Equal(t, "Radius of ring, m", en.XAxis)
	assert.Equal(t, "Light intensity, W/m²", en.YAxis)

	ru := Russian.Labels()
	assert.Equal(t, "Радиус кольца, м", ru.XAxis)

	assert.Equal(t, ru, Locale(42).Labels())
}
