package repository

import (
	"testing"

	"github.com/edulane/tutorhub/internal/models"
)

func TestHomeworkLifecycle(t *testing.T) {
	r := newTestRepos(t).Students

	hw, err := r.AddHomework(models.Homework{
		StudentID: "stu_1",
		TutorID:   "tut_1",
		Subject:   "English",
		Title:     "Essay on Macbeth",
		DueDate:   "2024-04-01",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if hw.Status != models.HomeworkAssigned {
		t.Errorf("default status: want assigned, got %s", hw.Status)
	}

	st := models.HomeworkGraded
	grade := "A"
	updated, err := r.UpdateHomework(hw.ID, HomeworkPatch{Status: &st, Grade: &grade})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil || updated.Status != models.HomeworkGraded || updated.Grade != "A" {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Title != hw.Title || updated.DueDate != hw.DueDate {
		t.Errorf("unpatched fields changed: %+v", updated)
	}

	listed, _ := r.ListHomework("stu_1")
	if len(listed) != 1 {
		t.Errorf("list: %+v", listed)
	}
	if listed, _ := r.ListHomework("stu_other"); len(listed) != 0 {
		t.Errorf("wrong student's homework visible: %+v", listed)
	}
}

func TestAttendanceAndLessons(t *testing.T) {
	r := newTestRepos(t).Students

	lesson, _ := r.AddLesson(models.StudentLesson{StudentID: "stu_1", TutorID: "tut_1", Subject: "Science", Date: "2024-03-05", Slot: "15:00-17:00"})
	if lesson.Status != models.BookingConfirmed {
		t.Errorf("default lesson status: %s", lesson.Status)
	}

	rec, err := r.RecordAttendance(models.AttendanceRecord{StudentID: "stu_1", LessonID: lesson.ID, Date: "2024-03-05"})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Status != models.AttendancePresent {
		t.Errorf("default attendance status: %s", rec.Status)
	}

	done, _ := r.SetLessonStatus(lesson.ID, models.BookingCompleted)
	if done == nil || done.Status != models.BookingCompleted {
		t.Errorf("lesson status: %+v", done)
	}

	att, _ := r.ListAttendance("stu_1")
	if len(att) != 1 || att[0].LessonID != lesson.ID {
		t.Errorf("attendance list: %+v", att)
	}
}

func TestProgressReports(t *testing.T) {
	r := newTestRepos(t).Students

	p, err := r.AddProgress(models.ProgressReport{StudentID: "stu_1", Subject: "Mathematics", Score: 82, Comment: "steady improvement"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.Period == "" {
		t.Error("period not defaulted to current month")
	}

	reports, _ := r.ListProgress("stu_1")
	if len(reports) != 1 || reports[0].Score != 82 {
		t.Errorf("list: %+v", reports)
	}
}
