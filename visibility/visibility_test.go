package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnkushinDaniil/newton-rings/entity"
)

func TestMinMax(t *testing.T) {
	minimum, maximum := MinMax([]entity.Sample{{Radius: 0, Intensity: 3}, {Radius: 1, Intensity: 1}, {Radius: 2, Intensity: 5}})
	assert.Equal(t, 1.0, minimum)
	assert.Equal(t, 5.0, maximum)

	minimum, maximum = MinMax(nil)
	assert.Zero(t, minimum)
	assert.Zero(t, maximum)
}

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		samples  []entity.Sample
		expected float64
	}{
		{"empty", nil, 0},
		{"dark", []entity.Sample{{Radius: 0, Intensity: 0}, {Radius: 1, Intensity: 0}}, 0},
		{"flat", []entity.Sample{{Radius: 0, Intensity: 2}, {Radius: 1, Intensity: 2}}, 0},
		{"full contrast", []entity.Sample{{Radius: 0, Intensity: 0}, {Radius: 1, Intensity: 4}}, 1},
		{"half contrast", []entity.Sample{{Radius: 0, Intensity: 1}, {Radius: 1, Intensity: 3}}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Of(tt.samples), 1e-12)
		})
	}
}
