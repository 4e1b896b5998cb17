package archive

import (
	"testing"
)

func TestSimpleRoundTrip(t *testing.T) {

	pairs := []FilePair{
		{"a.txt", "hi"},
		{"b.txt", "bye"},
		{"a.txt", "shadowed duplicate"},
		{"", ""},
	}

	a := NewSimple(pairs)

	if a.Count() != len(pairs) {
		t.Fatalf("Expected %d entries, got %d", len(pairs), a.Count())
	}

	back := ExtractSimple(a)

	if len(back) != len(pairs) {
		t.Fatalf("Round trip changed length: %d -> %d", len(pairs), len(back))
	}
	for i := range pairs {
		if back[i] != pairs[i] {
			t.Errorf("Pair %d did not survive: expected %+v, got %+v", i, pairs[i], back[i])
		}
	}
}

func TestExtractSkipsDirectories(t *testing.T) {

	a := New()
	a.AddFile("a.txt", "hi")
	a.AddDirectory("d")
	a.AddFile("b.txt", "bye")

	pairs := ExtractSimple(a)

	expected := []FilePair{
		{"a.txt", "hi"},
		{"b.txt", "bye"},
	}

	if len(pairs) != len(expected) {
		t.Fatalf("Expected %d pairs, got %d", len(expected), len(pairs))
	}
	for i := range expected {
		if pairs[i] != expected[i] {
			t.Errorf("Pair %d: expected %+v, got %+v", i, expected[i], pairs[i])
		}
	}
}

func TestExtractSkipsSymlinkPlaceholders(t *testing.T) {

	a := New()
	a.AddFile("kept", "yes")
	a.entries = append(a.entries, Entry{
		Header: EntryHeader{Name: "link", Type: ENTRY_TYPE_SYMLINK},
	})

	pairs := ExtractSimple(a)
	if len(pairs) != 1 || pairs[0].Name != "kept" {
		t.Errorf("Symlink placeholder should be skipped, got %+v", pairs)
	}
}

func TestExtractEmpty(t *testing.T) {

	if pairs := ExtractSimple(New()); len(pairs) != 0 {
		t.Errorf("Empty archive should extract to nothing, got %+v", pairs)
	}
}
