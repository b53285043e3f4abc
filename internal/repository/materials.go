package repository

import (
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

type Materials struct {
	col store.Collection[models.Material]
}

func NewMaterials(s *store.Store) *Materials {
	return &Materials{col: store.NewCollection[models.Material](s, "materials")}
}

func (r *Materials) Create(m models.Material) (models.Material, error) {
	m.ID = models.NewID("mat")
	m.CreatedAt = time.Now().UTC()
	err := r.col.Mutate(func(items []models.Material) ([]models.Material, error) {
		return append(items, m), nil
	})
	return m, err
}

func (r *Materials) List() ([]models.Material, error) {
	return r.col.All()
}

func (r *Materials) ListByTutor(tutorID string) ([]models.Material, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Material, 0, len(items))
	for _, m := range items {
		if m.TutorID == tutorID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *Materials) ListByStudent(studentID string) ([]models.Material, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Material, 0, len(items))
	for _, m := range items {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *Materials) Delete(id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.Material) ([]models.Material, error) {
		out := make([]models.Material, 0, len(items))
		for _, m := range items {
			if m.ID == id {
				removed = true
				continue
			}
			out = append(out, m)
		}
		return out, nil
	})
	return removed && err == nil, err
}
