package repository

import (
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

// Students covers the student profile plus its per-role sub-collections:
// lessons, homework, progress reports and attendance.
type Students struct {
	col        store.Collection[models.StudentProfile]
	lessons    store.Collection[models.StudentLesson]
	homework   store.Collection[models.Homework]
	progress   store.Collection[models.ProgressReport]
	attendance store.Collection[models.AttendanceRecord]
}

func NewStudents(s *store.Store) *Students {
	return &Students{
		col:        store.NewCollection[models.StudentProfile](s, "student_profiles"),
		lessons:    store.NewCollection[models.StudentLesson](s, "student_lessons"),
		homework:   store.NewCollection[models.Homework](s, "student_homework"),
		progress:   store.NewCollection[models.ProgressReport](s, "student_progress"),
		attendance: store.NewCollection[models.AttendanceRecord](s, "student_attendance"),
	}
}

func (r *Students) Create(p models.StudentProfile) (models.StudentProfile, error) {
	p.ID = models.NewID("stu")
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Subjects == nil {
		p.Subjects = []string{}
	}
	err := r.col.Mutate(func(items []models.StudentProfile) ([]models.StudentProfile, error) {
		return append(items, p), nil
	})
	return p, err
}

func (r *Students) Get(id string) (*models.StudentProfile, error) {
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

func (r *Students) List() ([]models.StudentProfile, error) {
	return r.col.All()
}

func (r *Students) ListByParent(parentID string) ([]models.StudentProfile, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.StudentProfile, 0, len(items))
	for _, p := range items {
		if p.ParentID == parentID {
			out = append(out, p)
		}
	}
	return out, nil
}

type StudentPatch struct {
	Name      *string
	YearGroup *string
	Subjects  *[]string
}

func (r *Students) Update(id string, patch StudentPatch) (*models.StudentProfile, error) {
	var updated *models.StudentProfile
	err := r.col.Mutate(func(items []models.StudentProfile) ([]models.StudentProfile, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if patch.Name != nil {
				items[i].Name = *patch.Name
			}
			if patch.YearGroup != nil {
				items[i].YearGroup = *patch.YearGroup
			}
			if patch.Subjects != nil {
				items[i].Subjects = *patch.Subjects
			}
			items[i].UpdatedAt = time.Now().UTC()
			p := items[i]
			updated = &p
			break
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Students) Delete(id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.StudentProfile) ([]models.StudentProfile, error) {
		out := make([]models.StudentProfile, 0, len(items))
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

// --- lessons ---

func (r *Students) AddLesson(l models.StudentLesson) (models.StudentLesson, error) {
	l.ID = models.NewID("les")
	l.CreatedAt = time.Now().UTC()
	if l.Status == "" {
		l.Status = models.BookingConfirmed
	}
	err := r.lessons.Mutate(func(items []models.StudentLesson) ([]models.StudentLesson, error) {
		return append(items, l), nil
	})
	return l, err
}

func (r *Students) ListLessons(studentID string) ([]models.StudentLesson, error) {
	items, err := r.lessons.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.StudentLesson, 0, len(items))
	for _, l := range items {
		if l.StudentID == studentID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *Students) SetLessonStatus(id string, status models.BookingStatus) (*models.StudentLesson, error) {
	var updated *models.StudentLesson
	err := r.lessons.Mutate(func(items []models.StudentLesson) ([]models.StudentLesson, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				l := items[i]
				updated = &l
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

// --- homework ---

func (r *Students) AddHomework(h models.Homework) (models.Homework, error) {
	h.ID = models.NewID("hw")
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now
	if h.Status == "" {
		h.Status = models.HomeworkAssigned
	}
	err := r.homework.Mutate(func(items []models.Homework) ([]models.Homework, error) {
		return append(items, h), nil
	})
	return h, err
}

func (r *Students) ListHomework(studentID string) ([]models.Homework, error) {
	items, err := r.homework.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Homework, 0, len(items))
	for _, h := range items {
		if h.StudentID == studentID {
			out = append(out, h)
		}
	}
	return out, nil
}

type HomeworkPatch struct {
	Title   *string
	DueDate *string
	Status  *models.HomeworkStatus
	Grade   *string
}

func (r *Students) UpdateHomework(id string, p HomeworkPatch) (*models.Homework, error) {
	var updated *models.Homework
	err := r.homework.Mutate(func(items []models.Homework) ([]models.Homework, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if p.Title != nil {
				items[i].Title = *p.Title
			}
			if p.DueDate != nil {
				items[i].DueDate = *p.DueDate
			}
			if p.Status != nil {
				items[i].Status = *p.Status
			}
			if p.Grade != nil {
				items[i].Grade = *p.Grade
			}
			items[i].UpdatedAt = time.Now().UTC()
			h := items[i]
			updated = &h
			break
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Students) DeleteHomework(id string) (bool, error) {
	removed := false
	err := r.homework.Mutate(func(items []models.Homework) ([]models.Homework, error) {
		out := make([]models.Homework, 0, len(items))
		for _, h := range items {
			if h.ID == id {
				removed = true
				continue
			}
			out = append(out, h)
		}
		return out, nil
	})
	return removed && err == nil, err
}

// --- progress ---

func (r *Students) AddProgress(p models.ProgressReport) (models.ProgressReport, error) {
	p.ID = models.NewID("prg")
	p.CreatedAt = time.Now().UTC()
	if p.Period == "" {
		p.Period = p.CreatedAt.Format("2006-01")
	}
	err := r.progress.Mutate(func(items []models.ProgressReport) ([]models.ProgressReport, error) {
		return append(items, p), nil
	})
	return p, err
}

func (r *Students) ListProgress(studentID string) ([]models.ProgressReport, error) {
	items, err := r.progress.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.ProgressReport, 0, len(items))
	for _, p := range items {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- attendance ---

func (r *Students) RecordAttendance(a models.AttendanceRecord) (models.AttendanceRecord, error) {
	a.ID = models.NewID("att")
	a.CreatedAt = time.Now().UTC()
	if a.Status == "" {
		a.Status = models.AttendancePresent
	}
	err := r.attendance.Mutate(func(items []models.AttendanceRecord) ([]models.AttendanceRecord, error) {
		return append(items, a), nil
	})
	return a, err
}

func (r *Students) ListAttendance(studentID string) ([]models.AttendanceRecord, error) {
	items, err := r.attendance.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.AttendanceRecord, 0, len(items))
	for _, a := range items {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}
