package repository

import (
	"testing"
)

func TestEnsureDefaultsSeedsOnlyWhenEmpty(t *testing.T) {
	r := newTestRepos(t).Subjects

	if err := r.EnsureDefaults(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	subjects, _ := r.List()
	if len(subjects) != 6 {
		t.Fatalf("expected 6 seeded subjects, got %d", len(subjects))
	}

	// A second call must not duplicate the catalogue.
	if err := r.EnsureDefaults(); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	subjects, _ = r.List()
	if len(subjects) != 6 {
		t.Errorf("re-seed changed the collection: %d subjects", len(subjects))
	}

	// And it never resurrects a deleted subject once any remain.
	if removed, _ := r.Delete("History"); !removed {
		t.Fatal("could not delete seeded subject")
	}
	_ = r.EnsureDefaults()
	subjects, _ = r.List()
	if len(subjects) != 5 {
		t.Errorf("seed ran on a non-empty collection: %d subjects", len(subjects))
	}
}

// Subjects key on their name, not a generated ID.
func TestSubjectNaturalKeyUpdateDelete(t *testing.T) {
	r := newTestRepos(t).Subjects
	_ = r.EnsureDefaults()

	rate := 40.0
	updated, err := r.Update("Mathematics", SubjectPatch{RecommendedRate: &rate})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil || updated.RecommendedRate != 40 {
		t.Errorf("rate not applied: %+v", updated)
	}
	if updated.DurationHours != 2 {
		t.Errorf("duration changed unexpectedly: %+v", updated)
	}

	missing, _ := r.Update("Latin", SubjectPatch{RecommendedRate: &rate})
	if missing != nil {
		t.Errorf("expected nil for unknown subject, got %+v", missing)
	}

	removed, _ := r.Delete("Mathematics")
	if !removed {
		t.Error("delete reported nothing removed")
	}
	got, _ := r.Get("Mathematics")
	if got != nil {
		t.Error("deleted subject still readable")
	}
}
