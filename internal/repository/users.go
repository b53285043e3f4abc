package repository

import (
	"strings"
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

type Users struct {
	col store.Collection[models.User]
}

func NewUsers(s *store.Store) *Users {
	return &Users{col: store.NewCollection[models.User](s, "users")}
}

// Create is idempotent on email: if a user with the same address
// (case-insensitive) already exists, that record is returned unchanged
// and nothing is written.
func (r *Users) Create(u models.User) (models.User, error) {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	var result models.User
	err := r.col.Mutate(func(items []models.User) ([]models.User, error) {
		for _, existing := range items {
			if strings.EqualFold(existing.Email, u.Email) {
				result = existing
				return items, nil
			}
		}
		u.ID = models.NewID("usr")
		now := time.Now().UTC()
		u.CreatedAt = now
		u.UpdatedAt = now
		result = u
		return append(items, u), nil
	})
	return result, err
}

func (r *Users) Get(id string) (*models.User, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *Users) GetByEmail(email string) (*models.User, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if strings.EqualFold(items[i].Email, email) {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *Users) List() ([]models.User, error) {
	return r.col.All()
}

func (r *Users) ListByRole(role models.Role) ([]models.User, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(items))
	for _, u := range items {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type UserPatch struct {
	Name     *string
	Role     *models.Role
	Verified *bool
	Active   *bool
}

func (r *Users) Update(id string, p UserPatch) (*models.User, error) {
	var updated *models.User
	err := r.col.Mutate(func(items []models.User) ([]models.User, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if p.Name != nil {
				items[i].Name = *p.Name
			}
			if p.Role != nil {
				items[i].Role = *p.Role
			}
			if p.Verified != nil {
				items[i].Verified = *p.Verified
			}
			if p.Active != nil {
				items[i].Active = *p.Active
			}
			items[i].UpdatedAt = time.Now().UTC()
			u := items[i]
			updated = &u
			break
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Users) Delete(id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.User) ([]models.User, error) {
		out := make([]models.User, 0, len(items))
		for _, u := range items {
			if u.ID == id {
				removed = true
				continue
			}
			out = append(out, u)
		}
		return out, nil
	})
	return removed && err == nil, err
}
