package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/repository"
	svc "github.com/edulane/tutorhub/internal/services"
)

type createBookingRequest struct {
	ParentName  string `json:"parentName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ChildName   string `json:"childName" validate:"required"`
	LessonType  string `json:"lessonType" validate:"required,oneof=one_to_one group"`
	PupilsCount int    `json:"pupilsCount"`
	Date        string `json:"date" validate:"required"`
	Slot        string `json:"slot" validate:"required"`
	Subject     string `json:"subject"`
}

// POST /api/bookings
// Prices the lesson deterministically, upserts the parent by email and
// persists a pending booking.
func (a *API) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	email, _ := svc.NormEmail(req.Email)

	parent, err := a.Repos.Parents.Upsert(models.Parent{Name: req.ParentName, Email: email})
	if err != nil {
		a.serverError(w, err)
		return
	}

	quote := svc.PriceLesson(models.LessonType(req.LessonType), req.PupilsCount)
	booking, err := a.Repos.Bookings.Create(models.Booking{
		ParentID:    parent.ID,
		ParentName:  req.ParentName,
		Email:       email,
		StudentName: req.ChildName,
		Subject:     req.Subject,
		LessonType:  models.LessonType(req.LessonType),
		PupilsCount: quote.Pupils,
		Date:        req.Date,
		Slot:        req.Slot,
		Hours:       quote.Hours,
		Rate:        quote.Rate,
		Total:       quote.Total,
		Currency:    quote.Currency,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}

	a.Log.Info("booking created",
		zap.String("id", booking.ID),
		zap.String("lessonType", string(booking.LessonType)),
		zap.Float64("total", booking.Total))
	a.writeJSON(w, http.StatusCreated, booking)
}

// GET /api/bookings?status=&parentId=&tutorId=
func (a *API) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		items []models.Booking
		err   error
	)
	switch {
	case q.Get("parentId") != "":
		items, err = a.Repos.Bookings.ListByParent(q.Get("parentId"))
	case q.Get("tutorId") != "":
		items, err = a.Repos.Bookings.ListByTutor(q.Get("tutorId"))
	case q.Get("status") != "":
		items, err = a.Repos.Bookings.ListByStatus(models.BookingStatus(q.Get("status")))
	default:
		items, err = a.Repos.Bookings.List()
	}
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) GetBooking(w http.ResponseWriter, r *http.Request) {
	b, err := a.Repos.Bookings.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if b == nil {
		a.writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	a.writeJSON(w, http.StatusOK, b)
}

type bookingPatchRequest struct {
	TutorID *string  `json:"tutorId"`
	Subject *string  `json:"subject"`
	Date    *string  `json:"date"`
	Slot    *string  `json:"slot"`
	Hours   *float64 `json:"hours"`
	Rate    *float64 `json:"rate"`
	Total   *float64 `json:"total"`
	Status  *string  `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled rescheduled"`
}

// PATCH /api/bookings/{id}
func (a *API) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	patch := repository.BookingPatch{
		TutorID: req.TutorID,
		Subject: req.Subject,
		Date:    req.Date,
		Slot:    req.Slot,
		Hours:   req.Hours,
		Rate:    req.Rate,
		Total:   req.Total,
	}
	if req.Status != nil {
		st := models.BookingStatus(*req.Status)
		patch.Status = &st
	}
	b, err := a.Repos.Bookings.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		a.serverError(w, err)
		return
	}
	if b == nil {
		a.writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	a.writeJSON(w, http.StatusOK, b)
}

// POST /api/bookings/{id}/cancel
func (a *API) CancelBooking(w http.ResponseWriter, r *http.Request) {
	b, err := a.Repos.Bookings.Cancel(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if b == nil {
		a.writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	a.writeJSON(w, http.StatusOK, b)
}

// DELETE /api/bookings/{id}
func (a *API) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Bookings.Delete(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /qr/{id}.png
// Encodes a lookup URL for the booking so front-desk staff can pull it
// up by scanning at lesson check-in.
func (a *API) BookingQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	b, err := a.Repos.Bookings.Get(id)
	if err != nil {
		a.serverError(w, err)
		return
	}
	if b == nil {
		http.NotFound(w, r)
		return
	}

	url := "http://" + r.Host + "/api/bookings/" + id
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		a.serverError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
