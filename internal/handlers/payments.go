package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edulane/tutorhub/internal/models"
)

type createPaymentRequest struct {
	BookingID string  `json:"bookingId" validate:"required"`
	ParentID  string  `json:"parentId" validate:"required"`
	TutorID   string  `json:"tutorId"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency"`
}

func (a *API) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "GBP"
	}
	p, err := a.Repos.Payments.Create(models.Payment{
		BookingID: req.BookingID,
		ParentID:  req.ParentID,
		TutorID:   req.TutorID,
		Amount:    req.Amount,
		Currency:  currency,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, p)
}

func (a *API) ListPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		items []models.Payment
		err   error
	)
	switch {
	case q.Get("parentId") != "":
		items, err = a.Repos.Payments.ListByParent(q.Get("parentId"))
	case q.Get("status") != "":
		items, err = a.Repos.Payments.ListByStatus(models.PaymentStatus(q.Get("status")))
	default:
		items, err = a.Repos.Payments.List()
	}
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) GetPayment(w http.ResponseWriter, r *http.Request) {
	p, err := a.Repos.Payments.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if p == nil {
		a.writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

type paymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed failed refunded"`
}

// PUT /api/payments/{id}/status
func (a *API) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req paymentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	p, err := a.Repos.Payments.SetStatus(chi.URLParam(r, "id"), models.PaymentStatus(req.Status))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if p == nil {
		a.writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) DeletePayment(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Payments.Delete(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
