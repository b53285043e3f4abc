package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/repository"
)

type createTutorRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Subjects       []string `json:"subjects"`
	HourlyRate     float64  `json:"hourlyRate"`
	CommissionRate float64  `json:"commissionRate"`
}

func (a *API) CreateTutor(w http.ResponseWriter, r *http.Request) {
	var req createTutorRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	t, err := a.Repos.Tutors.Create(models.Tutor{
		Name:           req.Name,
		Email:          req.Email,
		Subjects:       req.Subjects,
		HourlyRate:     req.HourlyRate,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, t)
}

func (a *API) ListTutors(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.Tutor
		err   error
	)
	if st := r.URL.Query().Get("status"); st != "" {
		items, err = a.Repos.Tutors.ListByStatus(models.ApprovalStatus(st))
	} else {
		items, err = a.Repos.Tutors.List()
	}
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) GetTutor(w http.ResponseWriter, r *http.Request) {
	t, err := a.Repos.Tutors.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if t == nil {
		a.writeError(w, http.StatusNotFound, "tutor not found")
		return
	}
	a.writeJSON(w, http.StatusOK, t)
}

type tutorPatchRequest struct {
	Name           *string   `json:"name"`
	Subjects       *[]string `json:"subjects"`
	HourlyRate     *float64  `json:"hourlyRate"`
	CommissionRate *float64  `json:"commissionRate"`
}

func (a *API) UpdateTutor(w http.ResponseWriter, r *http.Request) {
	var req tutorPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	t, err := a.Repos.Tutors.Update(chi.URLParam(r, "id"), repository.TutorPatch{
		Name:           req.Name,
		Subjects:       req.Subjects,
		HourlyRate:     req.HourlyRate,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	if t == nil {
		a.writeError(w, http.StatusNotFound, "tutor not found")
		return
	}
	a.writeJSON(w, http.StatusOK, t)
}

// POST /api/tutors/{id}/approve and /reject
func (a *API) ApproveTutor(w http.ResponseWriter, r *http.Request) {
	a.setTutorApproval(w, r, models.ApprovalApproved)
}

func (a *API) RejectTutor(w http.ResponseWriter, r *http.Request) {
	a.setTutorApproval(w, r, models.ApprovalRejected)
}

func (a *API) setTutorApproval(w http.ResponseWriter, r *http.Request, status models.ApprovalStatus) {
	t, err := a.Repos.Tutors.SetApproval(chi.URLParam(r, "id"), status)
	if err != nil {
		a.serverError(w, err)
		return
	}
	if t == nil {
		a.writeError(w, http.StatusNotFound, "tutor not found")
		return
	}
	a.writeJSON(w, http.StatusOK, t)
}

func (a *API) DeleteTutor(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Tutors.Delete(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "tutor not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- availability ---

type slotRequest struct {
	Day  string `json:"day" validate:"required"`
	Slot string `json:"slot" validate:"required"`
}

func (a *API) AddTutorSlot(w http.ResponseWriter, r *http.Request) {
	var req slotRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	slot, err := a.Repos.Tutors.AddSlot(models.AvailabilitySlot{
		TutorID: chi.URLParam(r, "id"),
		Day:     req.Day,
		Slot:    req.Slot,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, slot)
}

func (a *API) ListTutorSlots(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Tutors.ListSlots(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) DeleteTutorSlot(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Tutors.DeleteSlot(chi.URLParam(r, "slotId"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "slot not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type slotBookedRequest struct {
	Booked *bool `json:"booked" validate:"required"`
}

// PATCH /api/tutors/{id}/availability/{slotId}
func (a *API) MarkTutorSlotBooked(w http.ResponseWriter, r *http.Request) {
	var req slotBookedRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	slot, err := a.Repos.Tutors.MarkSlotBooked(chi.URLParam(r, "slotId"), *req.Booked)
	if err != nil {
		a.serverError(w, err)
		return
	}
	if slot == nil {
		a.writeError(w, http.StatusNotFound, "slot not found")
		return
	}
	a.writeJSON(w, http.StatusOK, slot)
}

// --- earnings ---

type earningsRequest struct {
	BookingID  string  `json:"bookingId" validate:"required"`
	Gross      float64 `json:"gross" validate:"required"`
	Commission float64 `json:"commission"`
	Month      string  `json:"month"`
}

func (a *API) AddTutorEarnings(w http.ResponseWriter, r *http.Request) {
	var req earningsRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	e, err := a.Repos.Tutors.AddEarnings(models.EarningsEntry{
		TutorID:    chi.URLParam(r, "id"),
		BookingID:  req.BookingID,
		Gross:      req.Gross,
		Commission: req.Commission,
		Net:        req.Gross - req.Commission,
		Month:      req.Month,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, e)
}

func (a *API) ListTutorEarnings(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Tutors.ListEarnings(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

// --- payout settings ---

type payoutRequest struct {
	Method     string `json:"method" validate:"required,oneof=bank_transfer paypal"`
	AccountRef string `json:"accountRef" validate:"required"`
}

// PUT /api/tutors/{id}/payout-settings
func (a *API) PutPayoutSettings(w http.ResponseWriter, r *http.Request) {
	var req payoutRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	ps, err := a.Repos.Tutors.UpsertPayoutSettings(models.PayoutSettings{
		TutorID:    chi.URLParam(r, "id"),
		Method:     req.Method,
		AccountRef: req.AccountRef,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, ps)
}

func (a *API) GetPayoutSettings(w http.ResponseWriter, r *http.Request) {
	ps, err := a.Repos.Tutors.GetPayoutSettings(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if ps == nil {
		a.writeError(w, http.StatusNotFound, "payout settings not found")
		return
	}
	a.writeJSON(w, http.StatusOK, ps)
}

// --- lesson notes ---

type lessonNoteRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	StudentID string `json:"studentId"`
	Note      string `json:"note" validate:"required"`
}

func (a *API) AddLessonNote(w http.ResponseWriter, r *http.Request) {
	var req lessonNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	n, err := a.Repos.Tutors.AddLessonNote(models.LessonNote{
		TutorID:   chi.URLParam(r, "id"),
		BookingID: req.BookingID,
		StudentID: req.StudentID,
		Note:      req.Note,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, n)
}

func (a *API) ListLessonNotes(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Tutors.ListLessonNotes(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) DeleteLessonNote(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Tutors.DeleteLessonNote(chi.URLParam(r, "noteId"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "lesson note not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
