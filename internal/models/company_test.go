package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_ValueScanRoundTrip(t *testing.T) {
	original := StringList{"Engineering", "Sales", "HR"}

	value, err := original.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Engineering","Sales","HR"]`, value)

	var restored StringList
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}

func TestStringList_ScanBytes(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan([]byte(`["Engineering"]`)))
	assert.Equal(t, StringList{"Engineering"}, list)
}

func TestStringList_ScanNilYieldsEmpty(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestStringList_NilValueIsEmptyArray(t *testing.T) {
	var list StringList

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

func TestStringList_ScanRejectsUnknownType(t *testing.T) {
	var list StringList
	assert.Error(t, list.Scan(42))
}
