package repository

import (
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

type Bookings struct {
	col store.Collection[models.Booking]
}

func NewBookings(s *store.Store) *Bookings {
	return &Bookings{col: store.NewCollection[models.Booking](s, "bookings")}
}

// Create stamps the ID and timestamps, appends and persists. A zero
// Status defaults to pending.
func (r *Bookings) Create(b models.Booking) (models.Booking, error) {
	b.ID = models.NewID("bk")
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	err := r.col.Mutate(func(items []models.Booking) ([]models.Booking, error) {
		return append(items, b), nil
	})
	return b, err
}

// Get returns nil, nil when no booking has the given ID.
func (r *Bookings) Get(id string) (*models.Booking, error) {
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

func (r *Bookings) List() ([]models.Booking, error) {
	return r.col.All()
}

func (r *Bookings) ListByParent(parentID string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.ParentID == parentID })
}

func (r *Bookings) ListByTutor(tutorID string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.TutorID == tutorID })
}

func (r *Bookings) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Status == status })
}

func (r *Bookings) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(items))
	for _, b := range items {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

// BookingPatch carries the fields an update may change; nil means
// "leave as is".
type BookingPatch struct {
	TutorID *string
	Subject *string
	Date    *string
	Slot    *string
	Hours   *float64
	Rate    *float64
	Total   *float64
	Status  *models.BookingStatus
}

// Update shallow-merges the patch over the stored booking and refreshes
// UpdatedAt. Returns nil, nil when the ID is unknown.
func (r *Bookings) Update(id string, p BookingPatch) (*models.Booking, error) {
	var updated *models.Booking
	err := r.col.Mutate(func(items []models.Booking) ([]models.Booking, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if p.TutorID != nil {
				items[i].TutorID = *p.TutorID
			}
			if p.Subject != nil {
				items[i].Subject = *p.Subject
			}
			if p.Date != nil {
				items[i].Date = *p.Date
			}
			if p.Slot != nil {
				items[i].Slot = *p.Slot
			}
			if p.Hours != nil {
				items[i].Hours = *p.Hours
			}
			if p.Rate != nil {
				items[i].Rate = *p.Rate
			}
			if p.Total != nil {
				items[i].Total = *p.Total
			}
			if p.Status != nil {
				items[i].Status = *p.Status
			}
			items[i].UpdatedAt = time.Now().UTC()
			b := items[i]
			updated = &b
			break
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel is sugar for Update(id, status=cancelled).
func (r *Bookings) Cancel(id string) (*models.Booking, error) {
	st := models.BookingCancelled
	return r.Update(id, BookingPatch{Status: &st})
}

// Delete reports whether the collection actually shrank.
func (r *Bookings) Delete(id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.Booking) ([]models.Booking, error) {
		out := make([]models.Booking, 0, len(items))
		for _, b := range items {
			if b.ID == id {
				removed = true
				continue
			}
			out = append(out, b)
		}
		return out, nil
	})
	return removed && err == nil, err
}
