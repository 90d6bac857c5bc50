package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mariuschr/vinlookup-open/internal/common"
	"github.com/mariuschr/vinlookup-open/internal/models/entities"
)

func newTestReferenceService(repo ReferenceStore) *ReferenceService {
	return NewReferenceService(repo, common.NewCacheService(600, 900), nil)
}

func TestYearForCodeCachesLookups(t *testing.T) {
	calls := 0
	repo := &mockReferenceStore{
		yearForCode: func(ctx context.Context, kode string) (int, error) {
			calls++
			return 2010, nil
		},
	}

	svc := newTestReferenceService(repo)
	for i := 0; i < 3; i++ {
		year, err := svc.YearForCode(context.Background(), "A")
		if err != nil {
			t.Fatalf("YearForCode failed: %v", err)
		}
		if year != 2010 {
			t.Fatalf("year = %d, want 2010", year)
		}
	}
	if calls != 1 {
		t.Errorf("repository calls = %d, want 1", calls)
	}
}

func TestYearForCodeMapsNoRows(t *testing.T) {
	repo := &mockReferenceStore{
		yearForCode: func(ctx context.Context, kode string) (int, error) {
			return 0, sql.ErrNoRows
		},
	}

	svc := newTestReferenceService(repo)
	_, err := svc.YearForCode(context.Background(), "Z")
	if !errors.Is(err, ErrYearNotFound) {
		t.Errorf("error = %v, want ErrYearNotFound", err)
	}
}

func TestYearForCodeMissesAreNotCached(t *testing.T) {
	calls := 0
	repo := &mockReferenceStore{
		yearForCode: func(ctx context.Context, kode string) (int, error) {
			calls++
			return 0, sql.ErrNoRows
		},
	}

	svc := newTestReferenceService(repo)
	for i := 0; i < 2; i++ {
		if _, err := svc.YearForCode(context.Background(), "Z"); !errors.Is(err, ErrYearNotFound) {
			t.Fatalf("error = %v, want ErrYearNotFound", err)
		}
	}
	if calls != 2 {
		t.Errorf("repository calls = %d, want 2: failed lookups must not be cached", calls)
	}
}

func TestModelForIdentifierCachesLookups(t *testing.T) {
	calls := 0
	repo := &mockReferenceStore{
		modelForIdentifier: func(ctx context.Context, identifikator string) (*entities.ModelCode, error) {
			calls++
			return &entities.ModelCode{ModelBase: "Golf", Brand: "Volkswagen"}, nil
		},
	}

	svc := newTestReferenceService(repo)
	for i := 0; i < 3; i++ {
		model, err := svc.ModelForIdentifier(context.Background(), "1K")
		if err != nil {
			t.Fatalf("ModelForIdentifier failed: %v", err)
		}
		if model.ModelBase != "Golf" || model.Brand != "Volkswagen" {
			t.Fatalf("model = %+v", model)
		}
	}
	if calls != 1 {
		t.Errorf("repository calls = %d, want 1", calls)
	}
}

func TestModelForIdentifierMapsNoRows(t *testing.T) {
	repo := &mockReferenceStore{
		modelForIdentifier: func(ctx context.Context, identifikator string) (*entities.ModelCode, error) {
			return nil, sql.ErrNoRows
		},
	}

	svc := newTestReferenceService(repo)
	_, err := svc.ModelForIdentifier(context.Background(), "XX")
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("error = %v, want ErrModelNotFound", err)
	}
}

func TestColorForGermanCachesLookups(t *testing.T) {
	calls := 0
	repo := &mockReferenceStore{
		colorForGerman: func(ctx context.Context, fargeTysk string) (string, error) {
			calls++
			return "Svart", nil
		},
	}

	svc := newTestReferenceService(repo)
	for i := 0; i < 3; i++ {
		norwegian, err := svc.ColorForGerman(context.Background(), "Schwarz")
		if err != nil {
			t.Fatalf("ColorForGerman failed: %v", err)
		}
		if norwegian != "Svart" {
			t.Fatalf("norwegian = %q, want Svart", norwegian)
		}
	}
	if calls != 1 {
		t.Errorf("repository calls = %d, want 1", calls)
	}
}

func TestColorForGermanMapsNoRows(t *testing.T) {
	repo := &mockReferenceStore{
		colorForGerman: func(ctx context.Context, fargeTysk string) (string, error) {
			return "", sql.ErrNoRows
		},
	}

	svc := newTestReferenceService(repo)
	_, err := svc.ColorForGerman(context.Background(), "Lila")
	if !errors.Is(err, ErrColorNotFound) {
		t.Errorf("error = %v, want ErrColorNotFound", err)
	}
}

func TestAllColorsCachesTable(t *testing.T) {
	calls := 0
	repo := &mockReferenceStore{
		allColors: func(ctx context.Context) ([]entities.Color, error) {
			calls++
			return []entities.Color{{German: "Schwarz", Norwegian: "Svart"}}, nil
		},
	}

	svc := newTestReferenceService(repo)
	for i := 0; i < 3; i++ {
		colors, err := svc.AllColors(context.Background())
		if err != nil {
			t.Fatalf("AllColors failed: %v", err)
		}
		if len(colors) != 1 || colors[0].Norwegian != "Svart" {
			t.Fatalf("colors = %+v", colors)
		}
	}
	if calls != 1 {
		t.Errorf("repository calls = %d, want 1", calls)
	}
}
