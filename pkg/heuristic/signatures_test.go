package heuristic_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediascrub/pkg/heuristic"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestScanSignatures_NoMatches(t *testing.T) {
	matches := heuristic.ScanSignatures([]byte("plain text with no magic bytes"))
	assert.Empty(t, matches)
}

func TestScanSignatures_SingleOccurrence(t *testing.T) {
	data := append(append([]byte(nil), pngMagic...), bytes.Repeat([]byte{0x01}, 64)...)

	matches := heuristic.ScanSignatures(data)
	require.Len(t, matches, 1)
	assert.Equal(t, "png", matches[0].Name)
	assert.Equal(t, 1, matches[0].Count)
	assert.False(t, matches[0].Repeated())
}

func TestScanSignatures_RepeatedSignature(t *testing.T) {
	var data []byte
	data = append(data, pngMagic...)
	data = append(data, bytes.Repeat([]byte{0x42}, 32)...)
	data = append(data, pngMagic...)

	matches := heuristic.ScanSignatures(data)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Count)
	assert.True(t, matches[0].Repeated())
}

func TestScanSignatures_MultipleFormats(t *testing.T) {
	var data []byte
	data = append(data, 0xFF, 0xD8, 0xFF)
	data = append(data, []byte("RIFF")...)
	data = append(data, []byte("....ftyp")...)

	matches := heuristic.ScanSignatures(data)
	require.Len(t, matches, 3)

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"jpeg", "riff", "ftyp"}, names)
}
