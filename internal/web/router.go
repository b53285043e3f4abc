package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/edulane/tutorhub/internal/handlers"
)

func Router(api *handlers.API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(api.Log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", api.Health)

	// QR image for booking check-in
	r.Get("/qr/{id}.png", api.BookingQR)

	r.Route("/api", func(ar chi.Router) {
		// Public booking endpoint
		ar.Post("/bookings", api.CreateBooking)

		// Bookings
		ar.Get("/bookings", api.ListBookings)
		ar.Get("/bookings/{id}", api.GetBooking)
		ar.Patch("/bookings/{id}", api.UpdateBooking)
		ar.Post("/bookings/{id}/cancel", api.CancelBooking)
		ar.Delete("/bookings/{id}", api.DeleteBooking)

		// Users
		ar.Post("/users", api.CreateUser)
		ar.Get("/users", api.ListUsers)
		ar.Get("/users/{id}", api.GetUser)
		ar.Patch("/users/{id}", api.UpdateUser)
		ar.Delete("/users/{id}", api.DeleteUser)

		// Tutors
		ar.Post("/tutors", api.CreateTutor)
		ar.Get("/tutors", api.ListTutors)
		ar.Get("/tutors/{id}", api.GetTutor)
		ar.Patch("/tutors/{id}", api.UpdateTutor)
		ar.Post("/tutors/{id}/approve", api.ApproveTutor)
		ar.Post("/tutors/{id}/reject", api.RejectTutor)
		ar.Delete("/tutors/{id}", api.DeleteTutor)
		ar.Post("/tutors/{id}/availability", api.AddTutorSlot)
		ar.Get("/tutors/{id}/availability", api.ListTutorSlots)
		ar.Patch("/tutors/{id}/availability/{slotId}", api.MarkTutorSlotBooked)
		ar.Delete("/tutors/{id}/availability/{slotId}", api.DeleteTutorSlot)
		ar.Post("/tutors/{id}/earnings", api.AddTutorEarnings)
		ar.Get("/tutors/{id}/earnings", api.ListTutorEarnings)
		ar.Put("/tutors/{id}/payout-settings", api.PutPayoutSettings)
		ar.Get("/tutors/{id}/payout-settings", api.GetPayoutSettings)
		ar.Post("/tutors/{id}/lesson-notes", api.AddLessonNote)
		ar.Get("/tutors/{id}/lesson-notes", api.ListLessonNotes)
		ar.Delete("/tutors/{id}/lesson-notes/{noteId}", api.DeleteLessonNote)

		// Payments
		ar.Post("/payments", api.CreatePayment)
		ar.Get("/payments", api.ListPayments)
		ar.Get("/payments/{id}", api.GetPayment)
		ar.Put("/payments/{id}/status", api.SetPaymentStatus)
		ar.Delete("/payments/{id}", api.DeletePayment)

		// Subjects (name is the key)
		ar.Post("/subjects", api.CreateSubject)
		ar.Get("/subjects", api.ListSubjects)
		ar.Get("/subjects/{name}", api.GetSubject)
		ar.Patch("/subjects/{name}", api.UpdateSubject)
		ar.Delete("/subjects/{name}", api.DeleteSubject)

		// Announcements & materials
		ar.Post("/announcements", api.CreateAnnouncement)
		ar.Get("/announcements", api.ListAnnouncements)
		ar.Delete("/announcements/{id}", api.DeleteAnnouncement)
		ar.Post("/materials", api.CreateMaterial)
		ar.Get("/materials", api.ListMaterials)
		ar.Delete("/materials/{id}", api.DeleteMaterial)

		// Conversations & messages
		ar.Post("/conversations", api.CreateConversation)
		ar.Get("/conversations", api.ListConversations)
		ar.Post("/conversations/{id}/messages", api.SendMessage)
		ar.Get("/conversations/{id}/messages", api.ListMessages)
		ar.Post("/conversations/{id}/read", api.MarkConversationRead)

		// Students and their sub-collections
		ar.Post("/students", api.CreateStudent)
		ar.Get("/students", api.ListStudents)
		ar.Get("/students/{id}", api.GetStudent)
		ar.Patch("/students/{id}", api.UpdateStudent)
		ar.Delete("/students/{id}", api.DeleteStudent)
		ar.Post("/students/{id}/lessons", api.AddStudentLesson)
		ar.Get("/students/{id}/lessons", api.ListStudentLessons)
		ar.Patch("/students/{id}/lessons/{lessonId}", api.SetStudentLessonStatus)
		ar.Post("/students/{id}/homework", api.AddHomework)
		ar.Get("/students/{id}/homework", api.ListHomework)
		ar.Patch("/students/{id}/homework/{homeworkId}", api.UpdateHomework)
		ar.Delete("/students/{id}/homework/{homeworkId}", api.DeleteHomework)
		ar.Post("/students/{id}/progress", api.AddProgress)
		ar.Get("/students/{id}/progress", api.ListProgress)
		ar.Post("/students/{id}/attendance", api.RecordAttendance)
		ar.Get("/students/{id}/attendance", api.ListAttendance)

		// Parents and their sub-collections
		ar.Put("/parents", api.UpsertParent)
		ar.Get("/parents", api.ListParents)
		ar.Get("/parents/{id}", api.GetParent)
		ar.Delete("/parents/{id}", api.DeleteParent)
		ar.Post("/parents/{id}/children", api.AddChild)
		ar.Get("/parents/{id}/children", api.ListChildren)
		ar.Patch("/parents/{id}/children/{childId}", api.UpdateChild)
		ar.Delete("/parents/{id}/children/{childId}", api.DeleteChild)
		ar.Get("/parents/{id}/payments", api.ListParentPayments)
		ar.Get("/parents/{id}/announcements", api.ListParentAnnouncements)

		// Admin dashboard
		ar.Get("/admin/metrics", api.AdminMetrics)
	})

	return r
}

// requestLogger logs one line per request through zap.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
				zap.String("reqId", middleware.GetReqID(r.Context())))
		})
	}
}
