package sid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	id, err := Parse("IMSI12345")
	require.NoError(t, err)
	assert.Equal(t, "IMSI12345", id.String())
	assert.Equal(t, "12345", id.IMSI())
	assert.False(t, id.IsZero())
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "12345", "IMSI", "IMSI12a45", "imsi12345"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestZeroValue(t *testing.T) {
	var id SubscriberID
	assert.True(t, id.IsZero())
	assert.Empty(t, id.String())
}
