package rebuild

import (
	"testing"

	"github.com/talentohub/search/internal/domain/content"
)

func batch(ids ...string) []content.Content {
	out := make([]content.Content, 0, len(ids))
	for _, id := range ids {
		out = append(out, validRecord(id))
	}
	return out
}

func ids(records []content.Content) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestStaging_MergesSourcesInNameOrder(t *testing.T) {
	s := NewStaging()
	s.Put("jobs", batch("j1", "j2"))
	s.Put("events", batch("e1"))

	got := ids(s.Merged())
	want := []string{"e1", "j1", "j2"}
	if len(got) != len(want) {
		t.Fatalf("merged = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merged = %v, want %v", got, want)
		}
	}
}

func TestStaging_PutReplacesSourceBatch(t *testing.T) {
	s := NewStaging()
	s.Put("jobs", batch("j1", "j2"))
	s.Put("jobs", batch("j3"))

	got := ids(s.Merged())
	if len(got) != 1 || got[0] != "j3" {
		t.Errorf("merged = %v, want [j3]", got)
	}
}

func TestStaging_EmptySourceUsesDefault(t *testing.T) {
	s := NewStaging()
	s.Put("", batch("x"))
	s.Put(DefaultSource, batch("y"))
	got := ids(s.Merged())
	if len(got) != 1 || got[0] != "y" {
		t.Errorf("merged = %v, want [y]", got)
	}
}

func TestStaging_DirtyLifecycle(t *testing.T) {
	s := NewStaging()
	if s.Dirty() {
		t.Error("fresh staging must be clean")
	}
	s.Put("jobs", batch("j1"))
	if !s.Dirty() {
		t.Error("Put must mark staging dirty")
	}
	s.MarkClean()
	if s.Dirty() {
		t.Error("MarkClean must clear the dirty flag")
	}
	// Batches survive MarkClean; only the flag resets.
	if len(s.Merged()) != 1 {
		t.Error("batches must survive MarkClean")
	}
}
