package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/repository"
)

type createStudentRequest struct {
	ParentID  string   `json:"parentId" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	YearGroup string   `json:"yearGroup"`
	Subjects  []string `json:"subjects"`
}

func (a *API) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req createStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	p, err := a.Repos.Students.Create(models.StudentProfile{
		ParentID:  req.ParentID,
		Name:      req.Name,
		YearGroup: req.YearGroup,
		Subjects:  req.Subjects,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, p)
}

func (a *API) ListStudents(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.StudentProfile
		err   error
	)
	if pid := r.URL.Query().Get("parentId"); pid != "" {
		items, err = a.Repos.Students.ListByParent(pid)
	} else {
		items, err = a.Repos.Students.List()
	}
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

func (a *API) GetStudent(w http.ResponseWriter, r *http.Request) {
	p, err := a.Repos.Students.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if p == nil {
		a.writeError(w, http.StatusNotFound, "student not found")
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

type studentPatchRequest struct {
	Name      *string   `json:"name"`
	YearGroup *string   `json:"yearGroup"`
	Subjects  *[]string `json:"subjects"`
}

func (a *API) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req studentPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p, err := a.Repos.Students.Update(chi.URLParam(r, "id"), repository.StudentPatch{
		Name:      req.Name,
		YearGroup: req.YearGroup,
		Subjects:  req.Subjects,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	if p == nil {
		a.writeError(w, http.StatusNotFound, "student not found")
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Students.Delete(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "student not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- lessons ---

type studentLessonRequest struct {
	TutorID string `json:"tutorId" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Slot    string `json:"slot" validate:"required"`
}

func (a *API) AddStudentLesson(w http.ResponseWriter, r *http.Request) {
	var req studentLessonRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	l, err := a.Repos.Students.AddLesson(models.StudentLesson{
		StudentID: chi.URLParam(r, "id"),
		TutorID:   req.TutorID,
		Subject:   req.Subject,
		Date:      req.Date,
		Slot:      req.Slot,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, l)
}

func (a *API) ListStudentLessons(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Students.ListLessons(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

type lessonStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled rescheduled"`
}

// PATCH /api/students/{id}/lessons/{lessonId}
func (a *API) SetStudentLessonStatus(w http.ResponseWriter, r *http.Request) {
	var req lessonStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	l, err := a.Repos.Students.SetLessonStatus(chi.URLParam(r, "lessonId"), models.BookingStatus(req.Status))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if l == nil {
		a.writeError(w, http.StatusNotFound, "lesson not found")
		return
	}
	a.writeJSON(w, http.StatusOK, l)
}

// --- homework ---

type homeworkRequest struct {
	TutorID string `json:"tutorId" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Title   string `json:"title" validate:"required"`
	DueDate string `json:"dueDate" validate:"required"`
}

func (a *API) AddHomework(w http.ResponseWriter, r *http.Request) {
	var req homeworkRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	h, err := a.Repos.Students.AddHomework(models.Homework{
		StudentID: chi.URLParam(r, "id"),
		TutorID:   req.TutorID,
		Subject:   req.Subject,
		Title:     req.Title,
		DueDate:   req.DueDate,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, h)
}

func (a *API) ListHomework(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Students.ListHomework(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

type homeworkPatchRequest struct {
	Title   *string `json:"title"`
	DueDate *string `json:"dueDate"`
	Status  *string `json:"status" validate:"omitempty,oneof=assigned submitted graded"`
	Grade   *string `json:"grade"`
}

// PATCH /api/students/{id}/homework/{homeworkId}
func (a *API) UpdateHomework(w http.ResponseWriter, r *http.Request) {
	var req homeworkPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	patch := repository.HomeworkPatch{Title: req.Title, DueDate: req.DueDate, Grade: req.Grade}
	if req.Status != nil {
		st := models.HomeworkStatus(*req.Status)
		patch.Status = &st
	}
	h, err := a.Repos.Students.UpdateHomework(chi.URLParam(r, "homeworkId"), patch)
	if err != nil {
		a.serverError(w, err)
		return
	}
	if h == nil {
		a.writeError(w, http.StatusNotFound, "homework not found")
		return
	}
	a.writeJSON(w, http.StatusOK, h)
}

func (a *API) DeleteHomework(w http.ResponseWriter, r *http.Request) {
	removed, err := a.Repos.Students.DeleteHomework(chi.URLParam(r, "homeworkId"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	if !removed {
		a.writeError(w, http.StatusNotFound, "homework not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- progress ---

type progressRequest struct {
	Subject string `json:"subject" validate:"required"`
	Score   int    `json:"score" validate:"min=0,max=100"`
	Comment string `json:"comment"`
	Period  string `json:"period"`
}

func (a *API) AddProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	p, err := a.Repos.Students.AddProgress(models.ProgressReport{
		StudentID: chi.URLParam(r, "id"),
		Subject:   req.Subject,
		Score:     req.Score,
		Comment:   req.Comment,
		Period:    req.Period,
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, p)
}

func (a *API) ListProgress(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Students.ListProgress(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}

// --- attendance ---

type attendanceRequest struct {
	LessonID string `json:"lessonId" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=present absent late"`
}

func (a *API) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := a.checkRequest(req); !ok {
		a.writeError(w, http.StatusBadRequest, msg)
		return
	}
	rec, err := a.Repos.Students.RecordAttendance(models.AttendanceRecord{
		StudentID: chi.URLParam(r, "id"),
		LessonID:  req.LessonID,
		Date:      req.Date,
		Status:    models.AttendanceStatus(req.Status),
	})
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, rec)
}

func (a *API) ListAttendance(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repos.Students.ListAttendance(chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, items)
}
