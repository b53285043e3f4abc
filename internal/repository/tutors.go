package repository

import (
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

// Tutors covers the tutor record itself plus the tutor-scoped
// sub-collections: availability slots, earnings ledger, payout settings
// and lesson notes.
type Tutors struct {
	col      store.Collection[models.Tutor]
	slots    store.Collection[models.AvailabilitySlot]
	earnings store.Collection[models.EarningsEntry]
	payouts  store.Collection[models.PayoutSettings]
	notes    store.Collection[models.LessonNote]
}

func NewTutors(s *store.Store) *Tutors {
	return &Tutors{
		col:      store.NewCollection[models.Tutor](s, "tutors"),
		slots:    store.NewCollection[models.AvailabilitySlot](s, "tutor_availability"),
		earnings: store.NewCollection[models.EarningsEntry](s, "tutor_earnings"),
		payouts:  store.NewCollection[models.PayoutSettings](s, "tutor_payout_settings"),
		notes:    store.NewCollection[models.LessonNote](s, "tutor_lesson_notes"),
	}
}

func (r *Tutors) Create(t models.Tutor) (models.Tutor, error) {
	t.ID = models.NewID("tut")
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = models.ApprovalPending
	}
	if t.Subjects == nil {
		t.Subjects = []string{}
	}
	err := r.col.Mutate(func(items []models.Tutor) ([]models.Tutor, error) {
		return append(items, t), nil
	})
	return t, err
}

func (r *Tutors) Get(id string) (*models.Tutor, error) {
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

func (r *Tutors) List() ([]models.Tutor, error) {
	return r.col.All()
}

func (r *Tutors) ListByStatus(status models.ApprovalStatus) ([]models.Tutor, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Tutor, 0, len(items))
	for _, t := range items {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

type TutorPatch struct {
	Name           *string
	Subjects       *[]string
	HourlyRate     *float64
	Status         *models.ApprovalStatus
	CommissionRate *float64
	TotalEarnings  *float64
}

func (r *Tutors) Update(id string, p TutorPatch) (*models.Tutor, error) {
	var updated *models.Tutor
	err := r.col.Mutate(func(items []models.Tutor) ([]models.Tutor, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if p.Name != nil {
				items[i].Name = *p.Name
			}
			if p.Subjects != nil {
				items[i].Subjects = *p.Subjects
			}
			if p.HourlyRate != nil {
				items[i].HourlyRate = *p.HourlyRate
			}
			if p.Status != nil {
				items[i].Status = *p.Status
			}
			if p.CommissionRate != nil {
				items[i].CommissionRate = *p.CommissionRate
			}
			if p.TotalEarnings != nil {
				items[i].TotalEarnings = *p.TotalEarnings
			}
			items[i].UpdatedAt = time.Now().UTC()
			t := items[i]
			updated = &t
			break
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetApproval moves a tutor through the approval workflow.
func (r *Tutors) SetApproval(id string, status models.ApprovalStatus) (*models.Tutor, error) {
	return r.Update(id, TutorPatch{Status: &status})
}

func (r *Tutors) Delete(id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.Tutor) ([]models.Tutor, error) {
		out := make([]models.Tutor, 0, len(items))
		for _, t := range items {
			if t.ID == id {
				removed = true
				continue
			}
			out = append(out, t)
		}
		return out, nil
	})
	return removed && err == nil, err
}

// --- availability ---

func (r *Tutors) AddSlot(slot models.AvailabilitySlot) (models.AvailabilitySlot, error) {
	slot.ID = models.NewID("avl")
	slot.CreatedAt = time.Now().UTC()
	err := r.slots.Mutate(func(items []models.AvailabilitySlot) ([]models.AvailabilitySlot, error) {
		return append(items, slot), nil
	})
	return slot, err
}

func (r *Tutors) ListSlots(tutorID string) ([]models.AvailabilitySlot, error) {
	items, err := r.slots.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.AvailabilitySlot, 0, len(items))
	for _, s := range items {
		if s.TutorID == tutorID {
			out = append(out, s)
		}
	}
	return out, nil
}

// MarkSlotBooked flips the booked flag; nil, nil when the slot is
// unknown.
func (r *Tutors) MarkSlotBooked(id string, booked bool) (*models.AvailabilitySlot, error) {
	var updated *models.AvailabilitySlot
	err := r.slots.Mutate(func(items []models.AvailabilitySlot) ([]models.AvailabilitySlot, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Booked = booked
				s := items[i]
				updated = &s
				break
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Tutors) DeleteSlot(id string) (bool, error) {
	removed := false
	err := r.slots.Mutate(func(items []models.AvailabilitySlot) ([]models.AvailabilitySlot, error) {
		out := make([]models.AvailabilitySlot, 0, len(items))
		for _, s := range items {
			if s.ID == id {
				removed = true
				continue
			}
			out = append(out, s)
		}
		return out, nil
	})
	return removed && err == nil, err
}

// --- earnings ---

// AddEarnings appends a ledger entry and bumps the tutor's cumulative
// TotalEarnings by the net amount. Two writes, no transaction across
// collections; the ledger is the source of truth.
func (r *Tutors) AddEarnings(e models.EarningsEntry) (models.EarningsEntry, error) {
	e.ID = models.NewID("ern")
	e.CreatedAt = time.Now().UTC()
	if e.Month == "" {
		e.Month = e.CreatedAt.Format("2006-01")
	}
	err := r.earnings.Mutate(func(items []models.EarningsEntry) ([]models.EarningsEntry, error) {
		return append(items, e), nil
	})
	if err != nil {
		return e, err
	}
	err = r.col.Mutate(func(items []models.Tutor) ([]models.Tutor, error) {
		for i := range items {
			if items[i].ID == e.TutorID {
				items[i].TotalEarnings += e.Net
				items[i].UpdatedAt = time.Now().UTC()
				break
			}
		}
		return items, nil
	})
	return e, err
}

func (r *Tutors) ListEarnings(tutorID string) ([]models.EarningsEntry, error) {
	items, err := r.earnings.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.EarningsEntry, 0, len(items))
	for _, e := range items {
		if e.TutorID == tutorID {
			out = append(out, e)
		}
	}
	return out, nil
}

// --- payout settings ---

// UpsertPayoutSettings keeps at most one settings record per tutor.
func (r *Tutors) UpsertPayoutSettings(ps models.PayoutSettings) (models.PayoutSettings, error) {
	now := time.Now().UTC()
	var result models.PayoutSettings
	err := r.payouts.Mutate(func(items []models.PayoutSettings) ([]models.PayoutSettings, error) {
		for i := range items {
			if items[i].TutorID == ps.TutorID {
				if ps.Method != "" {
					items[i].Method = ps.Method
				}
				if ps.AccountRef != "" {
					items[i].AccountRef = ps.AccountRef
				}
				items[i].UpdatedAt = now
				result = items[i]
				return items, nil
			}
		}
		ps.ID = models.NewID("pay")
		ps.CreatedAt = now
		ps.UpdatedAt = now
		result = ps
		return append(items, ps), nil
	})
	return result, err
}

func (r *Tutors) GetPayoutSettings(tutorID string) (*models.PayoutSettings, error) {
	items, err := r.payouts.All()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].TutorID == tutorID {
			return &items[i], nil
		}
	}
	return nil, nil
}

// --- lesson notes ---

func (r *Tutors) AddLessonNote(n models.LessonNote) (models.LessonNote, error) {
	n.ID = models.NewID("note")
	n.CreatedAt = time.Now().UTC()
	err := r.notes.Mutate(func(items []models.LessonNote) ([]models.LessonNote, error) {
		return append(items, n), nil
	})
	return n, err
}

func (r *Tutors) ListLessonNotes(tutorID string) ([]models.LessonNote, error) {
	items, err := r.notes.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.LessonNote, 0, len(items))
	for _, n := range items {
		if n.TutorID == tutorID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *Tutors) DeleteLessonNote(id string) (bool, error) {
	removed := false
	err := r.notes.Mutate(func(items []models.LessonNote) ([]models.LessonNote, error) {
		out := make([]models.LessonNote, 0, len(items))
		for _, n := range items {
			if n.ID == id {
				removed = true
				continue
			}
			out = append(out, n)
		}
		return out, nil
	})
	return removed && err == nil, err
}
