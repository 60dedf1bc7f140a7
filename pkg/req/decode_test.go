package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	UseDecimals bool `json:"use_decimals"`
}

func TestDecode(t *testing.T) {
	p, err := Decode[payload](strings.NewReader(`{"use_decimals": true}`))
	require.NoError(t, err)
	assert.True(t, p.UseDecimals)
}

func TestDecodeEmptyBody(t *testing.T) {
	p, err := Decode[payload](strings.NewReader(""))
	require.NoError(t, err)
	assert.False(t, p.UseDecimals)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode[payload](strings.NewReader("{"))
	assert.Error(t, err)
}
