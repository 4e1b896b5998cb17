package snapshot

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/kettleson/satchel/satchel/archive"
	"github.com/pkg/errors"
)

var (
	ErrBadMagic         = errors.New("not a satchel snapshot (bad magic)")
	ErrVersion          = errors.New("unsupported snapshot version")
	ErrUnknownEntryType = errors.New("unknown entry type tag")
	ErrCorrupt          = errors.New("snapshot preamble disagrees with body")
)

// Read parses a snapshot and rebuilds the archive through AddFile and
// AddDirectory. A record carrying a tag those two can't produce --
// including the symlink placeholder, which has no constructor -- is
// refused with ErrUnknownEntryType rather than smuggled in.
func Read(r io.Reader) (*archive.Archive, error) {

	var preamble Preamble
	if err := binary.Read(r, binary.BigEndian, &preamble); err != nil {
		return nil, errors.Wrap(err, "failed to read preamble")
	}

	if !bytes.Equal(preamble.Magic[:], PREAMBLE_BYTES) {
		return nil, ErrBadMagic
	}
	if preamble.Version != SATCHEL_VERSION {
		return nil, errors.Wrapf(ErrVersion, "got version %d, want %d", preamble.Version, SATCHEL_VERSION)
	}

	var doc document
	if err := cbor.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot body")
	}

	if uint64(len(doc.Entries)) != preamble.Count {
		return nil, errors.Wrapf(ErrCorrupt, "preamble says %d entries, body has %d", preamble.Count, len(doc.Entries))
	}

	a := archive.New()
	for _, record := range doc.Entries {
		switch archive.EntryType(record.Type) {
		case archive.ENTRY_TYPE_NORMAL:
			a.AddFile(record.Name, record.Data)
		case archive.ENTRY_TYPE_DIRECTORY:
			a.AddDirectory(record.Name)
		default:
			return nil, errors.Wrapf(ErrUnknownEntryType, "entry %q has tag %d", record.Name, record.Type)
		}
	}

	return a, nil
}
