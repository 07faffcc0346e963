package rebuild

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talentohub/search/internal/domain"
	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/index"
)

func validRecord(id string) content.Content {
	return content.Content{
		ID:        id,
		Type:      content.TypeJob,
		Title:     "Backend Developer " + id,
		Language:  content.English,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestRebuild_DropsMalformedKeepsRest(t *testing.T) {
	handle := index.NewHandle()
	svc := New(handle, nil)

	broken := validRecord("broken")
	broken.Language = "fr"
	inactive := validRecord("inactive")
	inactive.IsActive = false

	stats, err := svc.Rebuild(context.Background(), []content.Content{
		validRecord("a"), broken, inactive, validRecord("b"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Indexed != 2 {
		t.Errorf("indexed = %d, want 2", stats.Indexed)
	}
	if stats.Dropped != 1 {
		t.Errorf("dropped = %d, want 1", stats.Dropped)
	}
	if stats.Inactive != 1 {
		t.Errorf("inactive = %d, want 1", stats.Inactive)
	}

	idx, ok := handle.Current()
	if !ok {
		t.Fatal("index not published")
	}
	if idx.TotalDocs() != 2 {
		t.Errorf("live docs = %d, want 2", idx.TotalDocs())
	}
}

func TestRebuild_EmptyBatchPublishesEmptyIndex(t *testing.T) {
	handle := index.NewHandle()
	svc := New(handle, nil)

	if _, err := svc.Rebuild(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, ok := handle.Current()
	if !ok {
		t.Fatal("empty rebuild must still publish an index")
	}
	if idx.TotalDocs() != 0 {
		t.Errorf("docs = %d, want 0", idx.TotalDocs())
	}
}

func TestRebuild_RejectsConcurrent(t *testing.T) {
	handle := index.NewHandle()
	svc := New(handle, nil)

	if !handle.BeginRebuild() {
		t.Fatal("could not claim rebuild slot")
	}
	defer handle.EndRebuild()

	_, err := svc.Rebuild(context.Background(), []content.Content{validRecord("a")})
	if !errors.Is(err, domain.ErrRebuildInProgress) {
		t.Errorf("error = %v, want ErrRebuildInProgress", err)
	}
}

func TestRebuild_CancelledContextLeavesOldIndex(t *testing.T) {
	handle := index.NewHandle()
	svc := New(handle, nil)

	if _, err := svc.Rebuild(context.Background(), []content.Content{validRecord("old")}); err != nil {
		t.Fatalf("first rebuild: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Rebuild(ctx, []content.Content{validRecord("new")}); err == nil {
		t.Fatal("expected context error")
	}

	idx, _ := handle.Current()
	if idx.TotalDocs() != 1 || idx.Docs()[0].Record.ID != "old" {
		t.Error("cancelled rebuild must not replace the live index")
	}
}

func TestRebuild_ReplacesWholesale(t *testing.T) {
	handle := index.NewHandle()
	svc := New(handle, nil)

	if _, err := svc.Rebuild(context.Background(), []content.Content{
		validRecord("a"), validRecord("b"),
	}); err != nil {
		t.Fatalf("first rebuild: %v", err)
	}
	if _, err := svc.Rebuild(context.Background(), []content.Content{validRecord("c")}); err != nil {
		t.Fatalf("second rebuild: %v", err)
	}

	idx, _ := handle.Current()
	if idx.TotalDocs() != 1 || idx.Docs()[0].Record.ID != "c" {
		t.Error("second rebuild did not replace the first wholesale")
	}
}
