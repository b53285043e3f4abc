package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edulane/tutorhub/internal/models"
)

// --- announcements ---

type announcementRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Audience string `json:"audience" validate:"omitempty,oneof=admin tutor parent student"`
}

func (a *API) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	ann, err := a.Repos.Announcements.Create(models.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		Audience: models.Role(req.Audience),
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, ann)
}

func (a *API) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.Announcement
		err   error
	)
	if aud := r.URL.Query().Get("audience"); aud != "" {
		items, err = a.Repos.Announcements.ListForAudience(models.Role(aud))
	} else {
		items, err = a.Repos.Announcements.List()
	}
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Announcements.Delete(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "announcement not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- materials ---

type materialRequest struct {
	TutorID   string `json:"tutorId" validate:"required"`
	StudentID string `json:"studentId"`
	Subject   string `json:"subject" validate:"required"`
	Title     string `json:"title" validate:"required"`
	URL       string `json:"url" validate:"required,url"`
}

func (a *API) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req materialRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	m, err := a.Repos.Materials.Create(models.Material{
		TutorID:   req.TutorID,
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Title:     req.Title,
		URL:       req.URL,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, m)
}

func (a *API) ListMaterials(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		items []models.Material
		err   error
	)
	switch {
	case q.Get("tutorId") != "":
		items, err = a.Repos.Materials.ListByTutor(q.Get("tutorId"))
	case q.Get("studentId") != "":
		items, err = a.Repos.Materials.ListByStudent(q.Get("studentId"))
	default:
		items, err = a.Repos.Materials.List()
	}
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Materials.Delete(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "material not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- conversations & messages ---

type conversationRequest struct {
	Participants []string `json:"participants" validate:"required,min=2"`
}

func (a *API) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req conversationRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	c, err := a.Repos.Messages.CreateConversation(req.Participants)
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, c)
}

func (a *API) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		a.writeError(w, http.StatusBadRequest, "userId is required")
		return
	}
	items, err := a.Repos.Messages.ListConversations(userID)
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

type sendMessageRequest struct {
	SenderID string `json:"senderId" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// POST /api/conversations/{id}/messages
func (a *API) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	conversationID := chi.URLParam(r, "id")
	conv, err := a.Repos.Messages.GetConversation(conversationID)
	if err != nil {
		a.serverError(w, err)
		return
	}
	if conv == nil {
		a.writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	m, err := a.Repos.Messages.Send(models.Message{
		ConversationID: conversationID,
		SenderID:       req.SenderID,
		Body:           req.Body,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, m)
}

func (a *API) ListMessages(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Messages.ListByConversation(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

// POST /api/conversations/{id}/read?userId=
func (a *API) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		a.writeError(w, http.StatusBadRequest, "userId is required")
		return
	}
	changed, err := a.Repos.Messages.MarkRead(chi.URLParam(r, "id"), userID)
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]int{"updated": changed})
}
