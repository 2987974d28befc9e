// Package jpegseg removes application-specific marker segments from JPEG
// byte streams. APPn segments are where EXIF, XMP, ICC and arbitrary vendor
// payloads live, so dropping them as whole units strips metadata without
// pattern-matching marker bytes that happen to occur inside segment bodies.
package jpegseg

import (
	"encoding/binary"
	"errors"
)

// ErrNotJPEG is returned when the input does not begin with the JPEG
// start-of-image marker. Callers treat it as a no-op rather than a failure.
var ErrNotJPEG = errors.New("not a JPEG: missing SOI marker")

// strippedMarkers are the APPn opcodes removed from the stream:
// APP0 (JFIF), APP1 (EXIF/XMP), APP2 (ICC), APP13 (IPTC/Photoshop),
// APP14 (Adobe).
var strippedMarkers = map[byte]bool{
	0xE0: true,
	0xE1: true,
	0xE2: true,
	0xED: true,
	0xEE: true,
}

// StripSegments scans data left to right and returns a copy with every
// recognised APPn segment removed as a unit. On 0xFF followed by a stripped
// opcode, the big-endian length field is read and 2+length bytes are dropped
// (the marker pair plus the declared segment, whose length includes the two
// length bytes themselves). Any other byte is copied unchanged.
//
// A length field that would extend past the end of the buffer is not trusted:
// the remaining bytes are copied literally instead of reading out of bounds.
func StripSegments(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		return data, ErrNotJPEG
	}

	out := make([]byte, 0, len(data))
	i := 0
	for i < len(data)-1 {
		if data[i] == 0xFF && strippedMarkers[data[i+1]] {
			// Need the two length bytes to interpret the segment
			if i+3 < len(data) {
				segmentLength := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
				end := i + 2 + segmentLength
				if end <= len(data) {
					i = end
					continue
				}
			}
			// Truncated segment: fall through and keep the bytes literal
		}
		out = append(out, data[i])
		i++
	}
	if i < len(data) {
		out = append(out, data[i])
	}

	return out, nil
}
