package archive

// FilePair is the shape the world above this package speaks: a name
// and its raw content. Whatever reads real files or writes real bytes
// trades in these and never touches the archive's internals.
type FilePair struct {
	Name    string
	Content string
}

// NewSimple builds a fresh archive from ordered pairs, one AddFile per
// pair. The resulting entry order is the input order.
func NewSimple(pairs []FilePair) *Archive {
	a := New()
	for _, pair := range pairs {
		a.AddFile(pair.Name, pair.Content)
	}
	return a
}

// ExtractSimple returns the (name, content) pairs of every normal file
// in entry order. Directories and symlink placeholders are skipped
// outright. For an archive built by NewSimple this reproduces the
// original input exactly.
func ExtractSimple(a *Archive) []FilePair {
	pairs := []FilePair{}
	for _, entry := range a.Entries() {
		switch entry.Header.Type {
		case ENTRY_TYPE_NORMAL:
			pairs = append(pairs, FilePair{Name: entry.Header.Name, Content: entry.Data})
		case ENTRY_TYPE_DIRECTORY:
			// no payload to extract
		case ENTRY_TYPE_SYMLINK:
			// placeholder tag, nothing to extract
		}
	}
	return pairs
}
