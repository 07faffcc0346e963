package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/talentohub/search/internal/domain"
	"github.com/talentohub/search/internal/domain/content"
)

func TestNew_Defaults(t *testing.T) {
	q, err := New("golang", Filters{}, Sort{}, 0, 0, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PageSize() != DefaultPageSize {
		t.Errorf("page size = %d, want %d", q.PageSize(), DefaultPageSize)
	}
	s := q.Sort()
	if s.Field != SortRelevance || s.Direction != Desc {
		t.Errorf("sort = %+v, want relevance desc", s)
	}
}

func TestNew_ClampsPageSize(t *testing.T) {
	q, err := New("golang", Filters{}, Sort{}, 0, 500, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PageSize() != MaxPageSize {
		t.Errorf("page size = %d, want %d", q.PageSize(), MaxPageSize)
	}
}

func TestNew_NegativePagination(t *testing.T) {
	if _, err := New("x", Filters{}, Sort{}, -1, 10, Options{}); !errors.Is(err, domain.ErrInvalidPagination) {
		t.Errorf("negative page error = %v, want ErrInvalidPagination", err)
	}
	if _, err := New("x", Filters{}, Sort{}, 0, -5, Options{}); !errors.Is(err, domain.ErrInvalidPagination) {
		t.Errorf("negative page size error = %v, want ErrInvalidPagination", err)
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	long := strings.Repeat("a", MaxQueryLength+1)
	if _, err := New(long, Filters{}, Sort{}, 0, 10, Options{}); err == nil {
		t.Error("expected error for oversized query")
	}
}

func TestNew_RejectsUnknownSortField(t *testing.T) {
	if _, err := New("x", Filters{}, Sort{Field: "score"}, 0, 10, Options{}); err == nil {
		t.Error("expected error for unknown sort field")
	}
	if _, err := New("x", Filters{}, Sort{Field: SortDate, Direction: "sideways"}, 0, 10, Options{}); err == nil {
		t.Error("expected error for unknown sort direction")
	}
}

func TestNew_ValidatesFilters(t *testing.T) {
	bad := Filters{ContentTypes: []content.Type{"podcast"}}
	if _, err := New("x", bad, Sort{}, 0, 10, Options{}); err == nil {
		t.Error("expected error for unknown content type filter")
	}
	badLang := Filters{Language: "fr"}
	if _, err := New("x", badLang, Sort{}, 0, 10, Options{}); err == nil {
		t.Error("expected error for unsupported language filter")
	}
}
