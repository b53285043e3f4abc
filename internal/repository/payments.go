package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

type Payments struct {
	col store.Collection[models.Payment]
}

func NewPayments(s *store.Store) *Payments {
	return &Payments{col: store.NewCollection[models.Payment](s, "payments")}
}

// Create stamps the ID, a transaction reference and timestamps. No card
// processor is involved; the reference just gives admins something to
// quote.
func (r *Payments) Create(p models.Payment) (models.Payment, error) {
	p.ID = models.NewID("pmt")
	now := time.Now().UTC()
	p.CreatedAt = now
	if p.TransactionAt.IsZero() {
		p.TransactionAt = now
	}
	if p.TransactionRef == "" {
		p.TransactionRef = "TXN-" + uuid.NewString()
	}
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	err := r.col.Mutate(func(items []models.Payment) ([]models.Payment, error) {
		return append(items, p), nil
	})
	return p, err
}

func (r *Payments) Get(id string) (*models.Payment, error) {
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

func (r *Payments) List() ([]models.Payment, error) {
	return r.col.All()
}

func (r *Payments) ListByParent(parentID string) ([]models.Payment, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Payment, 0, len(items))
	for _, p := range items {
		if p.ParentID == parentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Payments) ListByStatus(status models.PaymentStatus) ([]models.Payment, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Payment, 0, len(items))
	for _, p := range items {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

// SetStatus is the only mutation payments support; amounts are
// immutable once recorded.
func (r *Payments) SetStatus(id string, status models.PaymentStatus) (*models.Payment, error) {
	var updated *models.Payment
	err := r.col.Mutate(func(items []models.Payment) ([]models.Payment, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				p := items[i]
				updated = &p
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

func (r *Payments) Delete(id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.Payment) ([]models.Payment, error) {
		out := make([]models.Payment, 0, len(items))
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
