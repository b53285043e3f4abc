package repository

import (
	"strings"
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

// Parents covers the parent record plus the parent-scoped children
// collection.
type Parents struct {
	col      store.Collection[models.Parent]
	children store.Collection[models.Child]
}

func NewParents(s *store.Store) *Parents {
	return &Parents{
		col:      store.NewCollection[models.Parent](s, "parents"),
		children: store.NewCollection[models.Child](s, "parent_children"),
	}
}

// Upsert matches by case-insensitive email. When found, non-empty
// fields of p are merged over the stored record; otherwise a new record
// is created, honoring a caller-supplied ID if one is set.
func (r *Parents) Upsert(p models.Parent) (models.Parent, error) {
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	now := time.Now().UTC()
	var result models.Parent
	err := r.col.Mutate(func(items []models.Parent) ([]models.Parent, error) {
		for i := range items {
			if strings.EqualFold(items[i].Email, p.Email) {
				if p.Name != "" {
					items[i].Name = p.Name
				}
				if p.Phone != "" {
					items[i].Phone = p.Phone
				}
				items[i].UpdatedAt = now
				result = items[i]
				return items, nil
			}
		}
		if p.ID == "" {
			p.ID = models.NewID("par")
		}
		p.CreatedAt = now
		p.UpdatedAt = now
		result = p
		return append(items, p), nil
	})
	return result, err
}

func (r *Parents) Get(id string) (*models.Parent, error) {
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

func (r *Parents) GetByEmail(email string) (*models.Parent, error) {
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

func (r *Parents) List() ([]models.Parent, error) {
	return r.col.All()
}

// Delete removes only the parent record. Bookings, payments and
// children keep their parentId strings; nothing cascades.
func (r *Parents) Delete(id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.Parent) ([]models.Parent, error) {
		out := make([]models.Parent, 0, len(items))
		for _, p := range items {
			if p.ID == id {
				removed = true
				continue
			}
			out = append(out, p)
		}
		return out, nil
	})
	return removed && err == nil, err
}

// --- children ---

func (r *Parents) AddChild(c models.Child) (models.Child, error) {
	c.ID = models.NewID("chd")
	c.CreatedAt = time.Now().UTC()
	if c.Subjects == nil {
		c.Subjects = []string{}
	}
	err := r.children.Mutate(func(items []models.Child) ([]models.Child, error) {
		return append(items, c), nil
	})
	return c, err
}

func (r *Parents) ListChildren(parentID string) ([]models.Child, error) {
	items, err := r.children.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Child, 0, len(items))
	for _, c := range items {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

type ChildPatch struct {
	Name      *string
	YearGroup *string
	Subjects  *[]string
}

func (r *Parents) UpdateChild(id string, p ChildPatch) (*models.Child, error) {
	var updated *models.Child
	err := r.children.Mutate(func(items []models.Child) ([]models.Child, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if p.Name != nil {
				items[i].Name = *p.Name
			}
			if p.YearGroup != nil {
				items[i].YearGroup = *p.YearGroup
			}
			if p.Subjects != nil {
				items[i].Subjects = *p.Subjects
			}
			c := items[i]
			updated = &c
			break
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Parents) DeleteChild(id string) (bool, error) {
	removed := false
	err := r.children.Mutate(func(items []models.Child) ([]models.Child, error) {
		out := make([]models.Child, 0, len(items))
		for _, c := range items {
			if c.ID == id {
				removed = true
				continue
			}
			out = append(out, c)
		}
		return out, nil
	})
	return removed && err == nil, err
}
