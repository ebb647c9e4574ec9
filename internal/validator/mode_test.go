package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeOrdering(t *testing.T) {
	assert.True(t, ModeNone < ModeSimple)
	assert.True(t, ModeSimple < ModeStrict)
	assert.True(t, ModeStrict < ModeVeryStrict)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", ModeNone.String())
	assert.Equal(t, "simple", ModeSimple.String())
	assert.Equal(t, "strict", ModeStrict.String())
	assert.Equal(t, "verystrict", ModeVeryStrict.String())
	assert.Equal(t, "mode(42)", Mode(42).String())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "none", want: ModeNone},
		{input: "simple", want: ModeSimple},
		{input: "strict", want: ModeStrict},
		{input: "verystrict", want: ModeVeryStrict},
		{input: "STRICT", want: ModeStrict},
		{input: " verystrict ", want: ModeVeryStrict},
		{input: "paranoid", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
