package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/repository"
	svc "github.com/edulane/tutorhub/internal/services"
)

type upsertParentRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// PUT /api/parents — upsert by case-insensitive email.
func (a *API) UpsertParent(w http.ResponseWriter, r *http.Request) {
	var req upsertParentRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	email, _ := svc.NormEmail(req.Email)
	p, err := a.Repos.Parents.Upsert(models.Parent{
		ID:    req.ID,
		Name:  req.Name,
		Email: email,
		Phone: req.Phone,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) ListParents(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Parents.List()
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) GetParent(w http.ResponseWriter, r *http.Request) {
	p, err := a.Repos.Parents.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if p == nil {
		a.writeError(w, http.StatusNotFound, "parent not found")
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) DeleteParent(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Parents.Delete(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "parent not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- children ---

type childRequest struct {
	Name      string   `json:"name" validate:"required"`
	YearGroup string   `json:"yearGroup"`
	Subjects  []string `json:"subjects"`
}

func (a *API) AddChild(w http.ResponseWriter, r *http.Request) {
	var req childRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	c, err := a.Repos.Parents.AddChild(models.Child{
		ParentID:  chi.URLParam(r, "id"),
		Name:      req.Name,
		YearGroup: req.YearGroup,
		Subjects:  req.Subjects,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, c)
}

func (a *API) ListChildren(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Parents.ListChildren(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

type childPatchRequest struct {
	Name      *string   `json:"name"`
	YearGroup *string   `json:"yearGroup"`
	Subjects  *[]string `json:"subjects"`
}

func (a *API) UpdateChild(w http.ResponseWriter, r *http.Request) {
	var req childPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	c, err := a.Repos.Parents.UpdateChild(chi.URLParam(r, "childId"), repository.ChildPatch{
		Name:      req.Name,
		YearGroup: req.YearGroup,
		Subjects:  req.Subjects,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	if c == nil {
		a.writeError(w, http.StatusNotFound, "child not found")
		return
	}
	a.writeJSON(w, http.StatusOK, c)
}

func (a *API) DeleteChild(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Parents.DeleteChild(chi.URLParam(r, "childId"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "child not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/parents/{id}/payments — the parent-facing payments view.
func (a *API) ListParentPayments(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Payments.ListByParent(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

// GET /api/parents/{id}/announcements — announcements addressed to
// parents (or everyone).
func (a *API) ListParentAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Announcements.ListForAudience(models.RoleParent)
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}
