package repository

import (
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

type Subjects struct {
	col store.Collection[models.SubjectConfig]
}

func NewSubjects(s *store.Store) *Subjects {
	return &Subjects{col: store.NewCollection[models.SubjectConfig](s, "subjects")}
}

// defaultSubjects is the bootstrap catalogue seeded into an empty
// installation.
var defaultSubjects = []models.SubjectConfig{
	{Name: "Mathematics", RecommendedRate: 30, DurationHours: 2},
	{Name: "English", RecommendedRate: 28, DurationHours: 2},
	{Name: "Science", RecommendedRate: 30, DurationHours: 2},
	{Name: "History", RecommendedRate: 25, DurationHours: 1},
	{Name: "Geography", RecommendedRate: 25, DurationHours: 1},
	{Name: "Computer Science", RecommendedRate: 35, DurationHours: 2},
}

// EnsureDefaults seeds the six default subjects only when the
// collection is currently empty. Safe to call on every startup.
func (r *Subjects) EnsureDefaults() error {
	return r.col.Mutate(func(items []models.SubjectConfig) ([]models.SubjectConfig, error) {
		if len(items) > 0 {
			return items, nil
		}
		now := time.Now().UTC()
		seeded := make([]models.SubjectConfig, 0, len(defaultSubjects))
		for _, sub := range defaultSubjects {
			sub.CreatedAt = now
			seeded = append(seeded, sub)
		}
		return seeded, nil
	})
}

func (r *Subjects) Create(sub models.SubjectConfig) (models.SubjectConfig, error) {
	sub.CreatedAt = time.Now().UTC()
	err := r.col.Mutate(func(items []models.SubjectConfig) ([]models.SubjectConfig, error) {
		return append(items, sub), nil
	})
	return sub, err
}

func (r *Subjects) List() ([]models.SubjectConfig, error) {
	return r.col.All()
}

// Get looks a subject up by name. The name is the natural key
// throughout; there is no generated ID on this entity.
func (r *Subjects) Get(name string) (*models.SubjectConfig, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Name == name {
			return &items[i], nil
		}
	}
	return nil, nil
}

type SubjectPatch struct {
	RecommendedRate *float64
	DurationHours   *float64
}

func (r *Subjects) Update(name string, p SubjectPatch) (*models.SubjectConfig, error) {
	var updated *models.SubjectConfig
	err := r.col.Mutate(func(items []models.SubjectConfig) ([]models.SubjectConfig, error) {
		for i := range items {
			if items[i].Name != name {
				continue
			}
			if p.RecommendedRate != nil {
				items[i].RecommendedRate = *p.RecommendedRate
			}
			if p.DurationHours != nil {
				items[i].DurationHours = *p.DurationHours
			}
			sub := items[i]
			updated = &sub
			break
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Subjects) Delete(name string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.SubjectConfig) ([]models.SubjectConfig, error) {
		out := make([]models.SubjectConfig, 0, len(items))
		for _, sub := range items {
			if sub.Name == name {
				removed = true
				continue
			}
			out = append(out, sub)
		}
		return out, nil
	})
	return removed && err == nil, err
}
