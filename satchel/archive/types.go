package archive

// Entry types are a closed set. Anything that branches on one of these
// should switch over all three so a new tag can't slip past a call site.

type EntryType uint8

const (
	ENTRY_TYPE_NORMAL    EntryType = 0
	ENTRY_TYPE_DIRECTORY EntryType = 1
	// Symlinks are a placeholder tag: there is no constructor for them
	// and no target field. They only exist so the tag space matches
	// what a fuller archive would carry.
	ENTRY_TYPE_SYMLINK EntryType = 2
)

/*

An EntryHeader is the metadata half of an entry: the name it was added
under, the derived size of its payload, and its type tag. Size is never
set directly -- it always comes from the content at append time.

*/

type EntryHeader struct {
	Name string
	Size uint64
	Type EntryType
}

// Entry is one named unit held by an archive. Directories always carry
// empty data.
type Entry struct {
	Header EntryHeader
	Data   string
}
