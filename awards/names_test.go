package awards

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairNamesWellFormedUnchanged(t *testing.T) {
	input := `[{"name":"Meryl Streep","role":"Margaret Thatcher"}]`
	assert.Equal(t, input, RepairNames(input))
}

func TestRepairNamesIdempotent(t *testing.T) {
	defective := `[{"name":,"role":"Presenter"}]`
	repaired := RepairNames(defective)
	assert.Equal(t, `[{"name":null,"role":"Presenter"}]`, repaired)
	assert.Equal(t, repaired, RepairNames(repaired))
}

func TestRepairNamesConsecutiveDefects(t *testing.T) {
	defective := `[{"name":,"role":},{"name":}]`
	repaired := RepairNames(defective)
	assert.Equal(t, `[{"name":null,"role":null},{"name":null}]`, repaired)
}

func TestRepairNamesMissingValueBeforeBracket(t *testing.T) {
	assert.Equal(t, `[{"name":null}]`, RepairNames(`[{"name":}]`))
	assert.Equal(t, `["a",{"x":null}]`, RepairNames(`["a",{"x":}]`))
}

func TestDecodeNamesDoubleEncoded(t *testing.T) {
	// a JSON array stored as a string within a string, the usual shape
	// the importer preserves from the export
	raw := `"[{\"name\":\"Meryl Streep\",\"role\":\"Margaret Thatcher\"}]"`
	names, err := DecodeNames(raw)
	require.NoError(t, err)
	require.Len(t, names, 1)
	require.NotNil(t, names[0].Name)
	assert.Equal(t, "Meryl Streep", *names[0].Name)
	assert.Equal(t, "Margaret Thatcher", names[0].Role)
}

func TestDecodeNamesBareArray(t *testing.T) {
	names, err := DecodeNames(`[{"name":"Emma Thomas"},{"name":"Christopher Nolan"}]`)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Christopher Nolan", *names[1].Name)
}

func TestDecodeNamesRepairsMissingName(t *testing.T) {
	names, err := DecodeNames(`[{"name":,"role":"Presenter"}]`)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Nil(t, names[0].Name)
	assert.Equal(t, "Presenter", names[0].Role)
}

func TestDecodeNamesDoubleEncodedWithDefect(t *testing.T) {
	raw := `"[{\"name\":,\"role\":\"Presenter\"}]"`
	names, err := DecodeNames(raw)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Nil(t, names[0].Name)
}

func TestDecodeNamesEmptyArray(t *testing.T) {
	names, err := DecodeNames(`[]`)
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestDecodeNamesUnparseable(t *testing.T) {
	names, err := DecodeNames(`{{{not json`)
	require.Error(t, err)
	assert.Nil(t, names)

	var namesErr *NamesError
	require.True(t, errors.As(err, &namesErr))
	assert.Equal(t, `{{{not json`, namesErr.Raw)
}
