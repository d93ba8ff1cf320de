package geonym

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleParams struct {
	Depth int     `param:"depth"`
	Ratio float64 `param:"ratio"`
}

func TestDecodeParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   sampleParams
	}{
		{"nil keeps defaults", nil, sampleParams{Depth: 5, Ratio: 0.5}},
		{"typed values", Params{"depth": 3, "ratio": 0.25}, sampleParams{Depth: 3, Ratio: 0.25}},
		{"strings are converted", Params{"depth": "2", "ratio": "1.5"}, sampleParams{Depth: 2, Ratio: 1.5}},
		{"unknown keys are ignored", Params{"colour": "red"}, sampleParams{Depth: 5, Ratio: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sampleParams{Depth: 5, Ratio: 0.5}
			require.NoError(t, DecodeParams(tt.params, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeParams_Invalid(t *testing.T) {
	var p sampleParams
	err := DecodeParams(Params{"depth": "deep"}, &p)
	assert.True(t, errors.Is(err, ErrInvalidParams), "got %v", err)
}
