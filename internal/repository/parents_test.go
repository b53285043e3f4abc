package repository

import (
	"testing"

	"github.com/edulane/tutorhub/internal/models"
)

func TestUpsertParentCreatesThenMerges(t *testing.T) {
	r := newTestRepos(t).Parents

	created, err := r.Upsert(models.Parent{Name: "Dana", Email: "Dana@Example.com"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if created.ID == "" {
		t.Error("created parent has empty ID")
	}
	if created.Email != "dana@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}

	// Same email, different casing: merge, don't duplicate.
	merged, err := r.Upsert(models.Parent{Name: "Dana Updated", Email: "DANA@example.com", Phone: "0700"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if merged.ID != created.ID {
		t.Errorf("upsert created a duplicate: %s vs %s", merged.ID, created.ID)
	}
	if merged.Name != "Dana Updated" || merged.Phone != "0700" {
		t.Errorf("merge did not apply fields: %+v", merged)
	}

	parents, _ := r.List()
	if len(parents) != 1 {
		t.Errorf("collection length: want 1, got %d", len(parents))
	}
}

// A caller-supplied ID is honored on create.
func TestUpsertParentHonorsSuppliedID(t *testing.T) {
	r := newTestRepos(t).Parents

	p, err := r.Upsert(models.Parent{ID: "par_custom", Name: "Eli", Email: "eli@x.com"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if p.ID != "par_custom" {
		t.Errorf("supplied ID dropped: %q", p.ID)
	}
}

func TestChildrenCRUD(t *testing.T) {
	r := newTestRepos(t).Parents
	parent, _ := r.Upsert(models.Parent{Name: "Fay", Email: "fay@x.com"})

	c, err := r.AddChild(models.Child{ParentID: parent.ID, Name: "Kit", YearGroup: "Year 5"})
	if err != nil {
		t.Fatalf("add child: %v", err)
	}
	_, _ = r.AddChild(models.Child{ParentID: "par_other", Name: "Not Mine"})

	kids, _ := r.ListChildren(parent.ID)
	if len(kids) != 1 || kids[0].Name != "Kit" {
		t.Errorf("list children: %+v", kids)
	}

	year := "Year 6"
	updated, _ := r.UpdateChild(c.ID, ChildPatch{YearGroup: &year})
	if updated == nil || updated.YearGroup != "Year 6" {
		t.Errorf("child patch: %+v", updated)
	}
	if updated.Name != "Kit" {
		t.Errorf("unpatched field changed: %+v", updated)
	}

	removed, _ := r.DeleteChild(c.ID)
	if !removed {
		t.Error("delete child reported nothing removed")
	}
	kids, _ = r.ListChildren(parent.ID)
	if len(kids) != 0 {
		t.Errorf("child not deleted: %+v", kids)
	}
}

// Deleting a parent never cascades to bookings or children.
func TestParentDeleteDoesNotCascade(t *testing.T) {
	repos := newTestRepos(t)
	parent, _ := repos.Parents.Upsert(models.Parent{Name: "Gus", Email: "gus@x.com"})
	_, _ = repos.Parents.AddChild(models.Child{ParentID: parent.ID, Name: "Kid"})
	b := sampleBooking()
	b.ParentID = parent.ID
	booking, _ := repos.Bookings.Create(b)

	removed, _ := repos.Parents.Delete(parent.ID)
	if !removed {
		t.Fatal("parent not deleted")
	}

	kids, _ := repos.Parents.ListChildren(parent.ID)
	if len(kids) != 1 {
		t.Errorf("children cascaded: %+v", kids)
	}
	got, _ := repos.Bookings.Get(booking.ID)
	if got == nil {
		t.Error("booking cascaded")
	}
}
