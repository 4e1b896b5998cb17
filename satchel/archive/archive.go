package archive

/*

Archive is the in-memory model itself: an ordered, append-only
collection of entries. It is not the TAR wire format and does not
pretend to be -- no header blocks, no octal fields, no checksums, no
padding. Serialization lives above this package (see the snapshot
package), feeding names and content in through AddFile and reading them
back out through Entries or ExtractSimple.

Insertion order is a real guarantee here: it is the order Names and
Entries report, the tie-break for Find, and the order extraction walks.
Names are not normalized or checked in any way, so duplicates and even
empty names are fine; Find resolves to the first match.

An Archive is a single mutable resource. Nothing in this package locks,
so concurrent callers need their own mutual exclusion around it.

*/

type Archive struct {
	entries []Entry
}

// New returns an empty archive.
func New() *Archive {
	return &Archive{}
}

// AddFile appends a normal-file entry. The header size is derived from
// the content; there is no way for the two to drift apart.
func (a *Archive) AddFile(name string, content string) {
	a.entries = append(a.entries, Entry{
		Header: EntryHeader{
			Name: name,
			Size: uint64(len(content)),
			Type: ENTRY_TYPE_NORMAL,
		},
		Data: content,
	})
}

// AddDirectory appends a directory entry. Directories have no payload,
// so the size is always zero.
func (a *Archive) AddDirectory(name string) {
	a.entries = append(a.entries, Entry{
		Header: EntryHeader{
			Name: name,
			Size: 0,
			Type: ENTRY_TYPE_DIRECTORY,
		},
		Data: "",
	})
}

// Count reports how many entries the archive holds.
func (a *Archive) Count() int {
	return len(a.entries)
}

// Entries returns a snapshot of the entry sequence in insertion order.
// The slice is a copy: entries hold nothing but strings, so the caller
// can't reach back into the archive through it. AddFile and
// AddDirectory stay the only ways to change state.
func (a *Archive) Entries() []Entry {
	snapshot := make([]Entry, len(a.entries))
	copy(snapshot, a.entries)
	return snapshot
}

// Names returns every entry name in insertion order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.entries))
	for _, entry := range a.entries {
		names = append(names, entry.Header.Name)
	}
	return names
}

// Find returns the first entry whose name is exactly equal to name.
// Not finding one is a normal outcome, not an error, so this is
// comma-ok rather than an error return. Matching is case-sensitive and
// does no path normalization.
func (a *Archive) Find(name string) (Entry, bool) {
	for _, entry := range a.entries {
		if entry.Header.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}
