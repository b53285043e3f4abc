package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edulane/tutorhub/internal/metrics"
	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/repository"
)

// GET /api/admin/metrics
// One dashboard payload: booking fold, top subjects, revenue series and
// tutor stats.
func (a *API) AdminMetrics(w http.ResponseWriter, r *http.Request) {
	bookings, err := a.Repos.Bookings.List()
	if err != nil {
		a.serverError(w, err)
		return
	}
	tutors, err := a.Repos.Tutors.List()
	if err != nil {
		a.serverError(w, err)
		return
	}

	summary := metrics.Calc(bookings)
	a.writeJSON(w, http.StatusOK, map[string]any{
		"summary":        summary,
		"topSubjects":    metrics.TopSubjects(summary.BySubject, 5),
		"revenueByMonth": metrics.RevenueByMonth(summary.RevenueTrend),
		"tutorStats":     metrics.TutorStats(tutors),
		"revenueDisplay": metrics.FormatCurrency(summary.TotalRevenue),
	})
}

// --- users ---

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role" validate:"required,oneof=admin tutor parent student"`
}

func (a *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	u, err := a.Repos.Users.Create(models.User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   models.Role(req.Role),
		Active: true,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, u)
}

func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.User
		err   error
	)
	if role := r.URL.Query().Get("role"); role != "" {
		items, err = a.Repos.Users.ListByRole(models.Role(role))
	} else {
		items, err = a.Repos.Users.List()
	}
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := a.Repos.Users.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if u == nil {
		a.writeError(w, http.StatusNotFound, "user not found")
		return
	}
	a.writeJSON(w, http.StatusOK, u)
}

type userPatchRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Verified *bool   `json:"verified"`
	Active   *bool   `json:"active"`
}

func (a *API) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req userPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	patch := repository.UserPatch{Name: req.Name, Verified: req.Verified, Active: req.Active}
	if req.Role != nil {
		role := models.Role(*req.Role)
		patch.Role = &role
	}
	u, err := a.Repos.Users.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		a.serverError(w, err)
		return
	}
	if u == nil {
		a.writeError(w, http.StatusNotFound, "user not found")
		return
	}
	a.writeJSON(w, http.StatusOK, u)
}

func (a *API) DeleteUser(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Users.Delete(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- subjects ---

type subjectRequest struct {
	Name            string  `json:"name" validate:"required"`
	RecommendedRate float64 `json:"recommendedRate"`
	DurationHours   float64 `json:"durationHours"`
}

func (a *API) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req subjectRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	sub, err := a.Repos.Subjects.Create(models.SubjectConfig{
		Name:            req.Name,
		RecommendedRate: req.RecommendedRate,
		DurationHours:   req.DurationHours,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, sub)
}

func (a *API) ListSubjects(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Subjects.List()
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) GetSubject(w http.ResponseWriter, r *http.Request) {
	sub, err := a.Repos.Subjects.Get(chi.URLParam(r, "name"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if sub == nil {
		a.writeError(w, http.StatusNotFound, "subject not found")
		return
	}
	a.writeJSON(w, http.StatusOK, sub)
}

type subjectPatchRequest struct {
	RecommendedRate *float64 `json:"recommendedRate"`
	DurationHours   *float64 `json:"durationHours"`
}

// PATCH /api/subjects/{name} — subjects key on their name.
func (a *API) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	var req subjectPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	sub, err := a.Repos.Subjects.Update(chi.URLParam(r, "name"), repository.SubjectPatch{
		RecommendedRate: req.RecommendedRate,
		DurationHours:   req.DurationHours,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	if sub == nil {
		a.writeError(w, http.StatusNotFound, "subject not found")
		return
	}
	a.writeJSON(w, http.StatusOK, sub)
}

func (a *API) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Subjects.Delete(chi.URLParam(r, "name"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "subject not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
