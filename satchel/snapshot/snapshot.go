package snapshot

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

/*

A snapshot is the byte form of an in-memory archive: a small fixed
preamble followed by one CBOR document listing the entries. It is built
entirely on the archive package's public surface and never reaches into
its representation.

This is not TAR and doesn't claim to be. There are no 512-byte blocks,
no octal fields, no checksums, no padding, and no compression -- just
enough framing to recognize our own files and reject everyone else's.

*/

const (
	PREAMBLE_STRING = "SATCHL"
	SATCHEL_VERSION = 1
)

var (
	PREAMBLE_BYTES = []byte{'S', 'A', 'T', 'C', 'H', 'L'}
)

type Preamble struct {
	// Magic value, must be PREAMBLE_STRING
	Magic [6]byte
	// Snapshot format version
	Version uint8
	// Number of entries in the document that follows
	Count uint64
}

func NewPreamble(count uint64) Preamble {
	return Preamble{
		Magic:   [6]byte{'S', 'A', 'T', 'C', 'H', 'L'},
		Version: SATCHEL_VERSION,
		Count:   count,
	}
}

func (p *Preamble) ToBytes() []byte {

	b := new(bytes.Buffer)

	p.WritePreamble(b)

	return b.Bytes()
}

func (p *Preamble) WritePreamble(w io.Writer) error {

	if err := binary.Write(w, binary.BigEndian, p.Magic); err != nil {
		return errors.Wrap(err, "failed to write preamble")
	}
	if err := binary.Write(w, binary.BigEndian, p.Version); err != nil {
		return errors.Wrap(err, "failed to write preamble")
	}
	if err := binary.Write(w, binary.BigEndian, p.Count); err != nil {
		return errors.Wrap(err, "failed to write preamble")
	}
	return nil
}

// The CBOR side of the snapshot. One record per entry, integer keys to
// keep the document small.

type entryRecord struct {
	Name string `cbor:"0,keyasint"`
	Type uint8  `cbor:"1,keyasint"`
	Data string `cbor:"2,keyasint"`
}

type document struct {
	Entries []entryRecord `cbor:"0,keyasint"`
}
