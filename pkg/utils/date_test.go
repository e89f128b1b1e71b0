package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("31/03/2025")
	assert.Error(t, err)
}

func TestParseOptionalInt(t *testing.T) {
	n, err := ParseOptionalInt("2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, *n)

	n, err = ParseOptionalInt("")
	assert.NoError(t, err)
	assert.Nil(t, n)

	_, err = ParseOptionalInt("março")
	assert.Error(t, err)
}
