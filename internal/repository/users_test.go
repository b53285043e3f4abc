package repository

import (
	"testing"

	"github.com/edulane/tutorhub/internal/models"
)

// Creating the same email twice (any casing) must return the original
// record and leave the collection length unchanged.
func TestCreateUserIdempotentOnEmail(t *testing.T) {
	r := newTestRepos(t).Users

	first, err := r.Create(models.User{Email: "Jane@Example.com", Name: "Jane", Role: models.RoleParent})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Email != "jane@example.com" {
		t.Errorf("email not normalized: %q", first.Email)
	}

	second, err := r.Create(models.User{Email: "JANE@example.COM", Name: "Someone Else", Role: models.RoleTutor})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the existing record back, got %s vs %s", second.ID, first.ID)
	}
	if second.Name != "Jane" || second.Role != models.RoleParent {
		t.Errorf("existing record was modified: %+v", second)
	}

	users, _ := r.List()
	if len(users) != 1 {
		t.Errorf("collection length: want 1, got %d", len(users))
	}
}

func TestUserGetByEmailAndRole(t *testing.T) {
	r := newTestRepos(t).Users
	_, _ = r.Create(models.User{Email: "a@x.com", Name: "A", Role: models.RoleParent})
	_, _ = r.Create(models.User{Email: "b@x.com", Name: "B", Role: models.RoleTutor})

	u, err := r.GetByEmail("A@X.COM")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if u == nil || u.Name != "A" {
		t.Errorf("get by email: %+v", u)
	}

	tutors, _ := r.ListByRole(models.RoleTutor)
	if len(tutors) != 1 || tutors[0].Name != "B" {
		t.Errorf("list by role: %+v", tutors)
	}
}

func TestUserUpdateAndDelete(t *testing.T) {
	r := newTestRepos(t).Users
	u, _ := r.Create(models.User{Email: "c@x.com", Name: "C", Role: models.RoleStudent})

	verified := true
	got, err := r.Update(u.ID, UserPatch{Verified: &verified})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got == nil || !got.Verified {
		t.Errorf("verified flag not applied: %+v", got)
	}
	if got.Name != "C" || got.Role != models.RoleStudent {
		t.Errorf("unpatched fields changed: %+v", got)
	}

	removed, _ := r.Delete(u.ID)
	if !removed {
		t.Error("delete reported nothing removed")
	}
	gone, _ := r.Get(u.ID)
	if gone != nil {
		t.Error("deleted user still readable")
	}
}
