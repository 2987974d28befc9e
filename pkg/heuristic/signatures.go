package heuristic

import (
	"bytes"
	"encoding/hex"
)

// Signature is a known file-format magic sequence
type Signature struct {
	Name  string
	Magic []byte
}

// KnownSignatures are the outer-format magics the scanner looks for. Each of
// these should appear at most once in a well-formed file of its format; a
// second occurrence suggests an embedded or appended payload.
var KnownSignatures = []Signature{
	{Name: "jpeg", Magic: []byte{0xFF, 0xD8, 0xFF}},
	{Name: "png", Magic: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{Name: "riff", Magic: []byte("RIFF")},
	{Name: "ftyp", Magic: []byte("ftyp")},
}

// SignatureMatch reports how often one signature occurred in a buffer
type SignatureMatch struct {
	Name  string
	Hex   string
	Count int
}

// Repeated is true when the signature occurred more often than a well-formed
// outer format would contain it.
func (m SignatureMatch) Repeated() bool {
	return m.Count > 1
}

// ScanSignatures counts occurrences of every known signature within data.
// Signatures with zero occurrences are omitted; match order follows
// KnownSignatures. The scan is O(N*k) over k signatures, which is fine at
// whole-file-in-memory scales.
func ScanSignatures(data []byte) []SignatureMatch {
	var matches []SignatureMatch
	for _, sig := range KnownSignatures {
		count := bytes.Count(data, sig.Magic)
		if count == 0 {
			continue
		}
		matches = append(matches, SignatureMatch{
			Name:  sig.Name,
			Hex:   hex.EncodeToString(sig.Magic),
			Count: count,
		})
	}
	return matches
}
