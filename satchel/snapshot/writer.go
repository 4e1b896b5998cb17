package snapshot

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/kettleson/satchel/satchel/archive"
	"github.com/pkg/errors"
)

// Write serializes the archive to w: preamble first, then the CBOR
// document. Entries go out in archive order, read through Entries(),
// so the round trip through Read preserves ordering exactly.
func Write(w io.Writer, a *archive.Archive) error {

	entries := a.Entries()

	preamble := NewPreamble(uint64(len(entries)))
	if err := preamble.WritePreamble(w); err != nil {
		return err
	}

	doc := document{
		Entries: make([]entryRecord, 0, len(entries)),
	}
	for _, entry := range entries {
		doc.Entries = append(doc.Entries, entryRecord{
			Name: entry.Header.Name,
			Type: uint8(entry.Header.Type),
			Data: entry.Data,
		})
	}

	body, err := cbor.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot body")
	}

	if _, err := w.Write(body); err != nil {
		return errors.Wrap(err, "failed to write snapshot body")
	}

	return nil
}
