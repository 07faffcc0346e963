package search

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func sampleContent() []Content {
	now := time.Now()
	return []Content{
		{
			ID:          "job-1",
			Type:        ContentJob,
			Title:       "Data Engineer",
			Description: "Build data pipelines for the platform",
			Content:     "Full description of the data engineering role",
			Tags:        []string{"python", "etl"},
			Language:    English,
			Details:     JobDetails{Company: "Acme", Category: "data"},
			CreatedAt:   now.AddDate(0, 0, -7),
			UpdatedAt:   now.AddDate(0, 0, -7),
			IsActive:    true,
		},
		{
			ID:          "event-1",
			Type:        ContentEvent,
			Title:       "Meetup de programación",
			Description: "Charlas sobre Go y microservicios",
			Tags:        []string{"golang"},
			Language:    Spanish,
			Details:     EventDetails{Organizer: "Comunidad", Category: "meetup"},
			CreatedAt:   now.AddDate(0, 0, -3),
			UpdatedAt:   now.AddDate(0, 0, -3),
			IsActive:    true,
		},
		{
			ID:        "old-1",
			Type:      ContentNews,
			Title:     "Archived announcement",
			Language:  English,
			CreatedAt: now.AddDate(-2, 0, 0),
			UpdatedAt: now.AddDate(-2, 0, 0),
			IsActive:  false,
		},
	}
}

func TestEngine_SearchBeforeRebuild(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Search(context.Background(), Request{Query: "data"})
	if !errors.Is(err, ErrIndexNotReady) {
		t.Errorf("error = %v, want ErrIndexNotReady", err)
	}
	if e.Stats().Ready {
		t.Error("engine must not report ready before the first rebuild")
	}
}

func TestEngine_RebuildAndSearch(t *testing.T) {
	e := newTestEngine(t)

	stats, err := e.RebuildIndex(context.Background(), sampleContent())
	if err != nil {
		t.Fatalf("RebuildIndex: %v", err)
	}
	if stats.Indexed != 2 || stats.Inactive != 1 || stats.Dropped != 0 {
		t.Errorf("stats = %+v", stats)
	}

	resp, err := e.Search(context.Background(), Request{
		Query:   "data engineer",
		Filters: Filters{Language: English},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1 (%+v)", resp.Total, resp.Results)
	}
	hit := resp.Results[0]
	if hit.ID != "job-1" || hit.Category != "data" || hit.Author != "Acme" {
		t.Errorf("hit = %+v", hit)
	}
	if hit.Content == "" {
		t.Error("default options include content, body missing")
	}
	if resp.Facets.Types[ContentJob] != 1 {
		t.Errorf("job facet = %d, want 1", resp.Facets.Types[ContentJob])
	}
}

func TestEngine_AllContentTypesFilter(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.RebuildIndex(context.Background(), sampleContent()); err != nil {
		t.Fatalf("RebuildIndex: %v", err)
	}

	// "all" lifts the type restriction instead of failing validation.
	resp, err := e.Search(context.Background(), Request{
		Query:   "data engineer",
		Filters: Filters{ContentTypes: []ContentType{ContentAll}, Language: English},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Total != 1 || resp.Results[0].ID != "job-1" {
		t.Errorf("response = %+v", resp.Results)
	}
}

func TestEngine_SpanishQueryMatchesStems(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.RebuildIndex(context.Background(), sampleContent()); err != nil {
		t.Fatalf("RebuildIndex: %v", err)
	}

	// "programas" shares the stem of "programación" in the event title.
	resp, err := e.Search(context.Background(), Request{Query: "programas"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Total != 1 || resp.Results[0].ID != "event-1" {
		t.Errorf("response = %+v", resp.Results)
	}
}

func TestEngine_InactiveNeverSearchable(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.RebuildIndex(context.Background(), sampleContent()); err != nil {
		t.Fatalf("RebuildIndex: %v", err)
	}
	resp, err := e.Search(context.Background(), Request{Query: "archived announcement"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("inactive record surfaced: %+v", resp.Results)
	}
}

func TestEngine_Suggest(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.RebuildIndex(context.Background(), sampleContent()); err != nil {
		t.Fatalf("RebuildIndex: %v", err)
	}
	suggestions, err := e.Suggest("meetup")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected suggestions")
	}
	if suggestions[0].Text != "Meetup de programación" {
		t.Errorf("suggestion = %+v", suggestions[0])
	}
}

func TestEngine_Stats(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.RebuildIndex(context.Background(), sampleContent()); err != nil {
		t.Fatalf("RebuildIndex: %v", err)
	}
	stats := e.Stats()
	if !stats.Ready || stats.Documents != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TypeCounts[ContentJob] != 1 || stats.TypeCounts[ContentEvent] != 1 {
		t.Errorf("type counts = %v", stats.TypeCounts)
	}
}

func TestEngine_WithTuning(t *testing.T) {
	e := newTestEngine(t, WithTuning(Tuning{DefaultMinScore: 1e6}))
	if _, err := e.RebuildIndex(context.Background(), sampleContent()); err != nil {
		t.Fatalf("RebuildIndex: %v", err)
	}
	resp, err := e.Search(context.Background(), Request{
		Query:   "data engineer",
		Filters: Filters{Language: English},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("tuned threshold ignored: total = %d", resp.Total)
	}

	// Negative MinScore on the request disables the threshold again.
	opts := DefaultOptions()
	opts.MinScore = -1
	resp, err = e.Search(context.Background(), Request{
		Query:   "data engineer",
		Filters: Filters{Language: English},
		Options: &opts,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("disabled threshold: total = %d, want 1", resp.Total)
	}
}

func TestEngine_RejectsConcurrentRebuild(t *testing.T) {
	e := newTestEngine(t)
	if !e.handle.BeginRebuild() {
		t.Fatal("could not claim rebuild slot")
	}
	defer e.handle.EndRebuild()

	_, err := e.RebuildIndex(context.Background(), sampleContent())
	if !errors.Is(err, ErrRebuildInProgress) {
		t.Errorf("error = %v, want ErrRebuildInProgress", err)
	}
}
