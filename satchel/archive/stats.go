package archive

// Stats is a derived summary of an archive. It is recomputed on every
// call and never stored, so it can't go stale against the entries.
type Stats struct {
	TotalEntries   int
	FileCount      int
	DirectoryCount int
	TotalSize      uint64
}

// Stats walks the entries once. Files count toward FileCount and
// TotalSize, directories toward DirectoryCount only. Symlink entries,
// should any ever exist, count toward TotalEntries and nothing else.
func (a *Archive) Stats() Stats {
	stats := Stats{
		TotalEntries: len(a.entries),
	}

	for _, entry := range a.entries {
		switch entry.Header.Type {
		case ENTRY_TYPE_NORMAL:
			stats.FileCount++
			stats.TotalSize += entry.Header.Size
		case ENTRY_TYPE_DIRECTORY:
			stats.DirectoryCount++
		case ENTRY_TYPE_SYMLINK:
			// tag-only placeholder, tracked in TotalEntries alone
		}
	}

	return stats
}
