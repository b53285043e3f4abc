package repository

import (
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

type Announcements struct {
	col store.Collection[models.Announcement]
}

func NewAnnouncements(s *store.Store) *Announcements {
	return &Announcements{col: store.NewCollection[models.Announcement](s, "announcements")}
}

func (r *Announcements) Create(a models.Announcement) (models.Announcement, error) {
	a.ID = models.NewID("ann")
	a.CreatedAt = time.Now().UTC()
	err := r.col.Mutate(func(items []models.Announcement) ([]models.Announcement, error) {
		return append(items, a), nil
	})
	return a, err
}

func (r *Announcements) List() ([]models.Announcement, error) {
	return r.col.All()
}

// ListForAudience returns announcements targeted at the given role. An
// announcement with an empty audience goes to everyone.
func (r *Announcements) ListForAudience(role models.Role) ([]models.Announcement, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Announcement, 0, len(items))
	for _, a := range items {
		if a.Audience == "" || a.Audience == role {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *Announcements) Delete(id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.Announcement) ([]models.Announcement, error) {
		out := make([]models.Announcement, 0, len(items))
		for _, a := range items {
			if a.ID == id {
				removed = true
				continue
			}
			out = append(out, a)
		}
		return out, nil
	})
	return removed && err == nil, err
}
