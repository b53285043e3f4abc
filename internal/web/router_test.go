package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/edulane/tutorhub/internal/handlers"
	"github.com/edulane/tutorhub/internal/repository"
	"github.com/edulane/tutorhub/internal/store"
)

func newTestServer(t *testing.T) (http.Handler, *repository.Repositories) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	repos := repository.New(s)
	api := handlers.New(repos, zap.NewNop())
	return Router(api), repos
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body: %q", rec.Body.String())
	}
}

func TestCreateBookingOneToOne(t *testing.T) {
	h, repos := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/bookings", `{
		"parentName": "Alice",
		"email": "Alice@Example.com",
		"childName": "Bob",
		"lessonType": "one_to_one",
		"date": "2024-03-01",
		"slot": "09:00-11:00",
		"subject": "Mathematics"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		ID       string  `json:"id"`
		Email    string  `json:"email"`
		Hours    float64 `json:"hours"`
		Rate     float64 `json:"rate"`
		Total    float64 `json:"total"`
		Currency string  `json:"currency"`
		Status   string  `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 60 || got.Hours != 2 || got.Rate != 30 || got.Currency != "GBP" {
		t.Errorf("pricing: %+v", got)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", got.Email)
	}
	if got.Status != "pending" {
		t.Errorf("status: %q", got.Status)
	}

	// The parent is upserted alongside the booking.
	parent, _ := repos.Parents.GetByEmail("alice@example.com")
	if parent == nil {
		t.Error("parent not created")
	}
	booking, _ := repos.Bookings.Get(got.ID)
	if booking == nil {
		t.Error("booking not persisted")
	}
}

// Group sizes above five price as five.
func TestCreateBookingGroupClampsPupils(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/bookings", `{
		"parentName": "Cara",
		"email": "cara@x.com",
		"childName": "Dee",
		"lessonType": "group",
		"pupilsCount": 7,
		"date": "2024-03-02",
		"slot": "13:00-15:00"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Total       float64 `json:"total"`
		PupilsCount int     `json:"pupilsCount"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Total != 200 {
		t.Errorf("clamped group total: want 200, got %v", got.Total)
	}
}

func TestCreateBookingMissingFieldRejected(t *testing.T) {
	h, repos := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/bookings", `{
		"parentName": "Eve",
		"email": "eve@x.com",
		"childName": "Finn",
		"lessonType": "one_to_one",
		"slot": "09:00-11:00"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: want 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("error body: %+v", body)
	}

	bookings, _ := repos.Bookings.List()
	if len(bookings) != 0 {
		t.Errorf("rejected request persisted a booking: %+v", bookings)
	}
}

func TestCreateBookingBadJSON(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/bookings", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: want 400, got %d", rec.Code)
	}
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/bookings", `{
		"parentName": "Gail",
		"email": "gail@x.com",
		"childName": "Hugh",
		"lessonType": "one_to_one",
		"date": "2024-03-03",
		"slot": "10:00-12:00",
		"subject": "Science"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	rec = doJSON(t, h, http.MethodGet, "/api/bookings/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Errorf("get: %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/bookings/"+created.ID+"/cancel", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: %d body: %s", rec.Code, rec.Body.String())
	}
	var cancelled struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &cancelled)
	if cancelled.Status != "cancelled" {
		t.Errorf("status after cancel: %q", cancelled.Status)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/bookings/bk_missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing booking: want 404, got %d", rec.Code)
	}
}

func TestAdminMetricsEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	for _, body := range []string{
		`{"parentName":"Ian","email":"ian@x.com","childName":"Jo","lessonType":"one_to_one","date":"2024-03-04","slot":"09:00-11:00","subject":"Mathematics"}`,
		`{"parentName":"Kim","email":"kim@x.com","childName":"Lee","lessonType":"group","pupilsCount":3,"date":"2024-03-05","slot":"13:00-15:00","subject":"Science"}`,
	} {
		if rec := doJSON(t, h, http.MethodPost, "/api/bookings", body); rec.Code != http.StatusCreated {
			t.Fatalf("seed booking: %d", rec.Code)
		}
	}

	rec := doJSON(t, h, http.MethodGet, "/api/admin/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: %d", rec.Code)
	}
	var got struct {
		Summary struct {
			TotalBookings int     `json:"totalBookings"`
			TotalRevenue  float64 `json:"totalRevenue"`
		} `json:"summary"`
		RevenueDisplay string `json:"revenueDisplay"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Summary.TotalBookings != 2 {
		t.Errorf("total bookings: %+v", got.Summary)
	}
	// 60 one-to-one + 120 group of three
	if got.Summary.TotalRevenue != 180 {
		t.Errorf("revenue: %+v", got.Summary)
	}
	if got.RevenueDisplay != "£180.00" {
		t.Errorf("display: %q", got.RevenueDisplay)
	}
}

func TestUpdateBookingRejectsUnknownStatus(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/bookings", `{
		"parentName": "Ola",
		"email": "ola@x.com",
		"childName": "Pia",
		"lessonType": "one_to_one",
		"date": "2024-03-07",
		"slot": "09:00-11:00"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	rec = doJSON(t, h, http.MethodPatch, "/api/bookings/"+created.ID, `{"status":"archived"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown status: want 400, got %d body: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/bookings/"+created.ID, `{"status":"confirmed"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("valid status: want 200, got %d body: %s", rec.Code, rec.Body.String())
	}
	var patched struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &patched)
	if patched.Status != "confirmed" {
		t.Errorf("status after patch: %q", patched.Status)
	}
}

func TestMarkTutorSlotBookedOverHTTP(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/tutors/tut_1/availability", `{"day":"monday","slot":"16:00-18:00"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add slot: %d body: %s", rec.Code, rec.Body.String())
	}
	var slot struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &slot)

	rec = doJSON(t, h, http.MethodPatch, "/api/tutors/tut_1/availability/"+slot.ID, `{"booked":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark booked: %d body: %s", rec.Code, rec.Body.String())
	}
	var patched struct {
		Booked bool `json:"booked"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &patched)
	if !patched.Booked {
		t.Errorf("slot not booked: %s", rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/tutors/tut_1/availability/slot_missing", `{"booked":true}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing slot: want 404, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/tutors/tut_1/availability/"+slot.ID, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing booked flag: want 400, got %d", rec.Code)
	}
}

func TestStudentLessonStatusOverHTTP(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/students/stu_1/lessons", `{
		"tutorId": "tut_1",
		"subject": "Science",
		"date": "2024-03-08",
		"slot": "15:00-17:00"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add lesson: %d body: %s", rec.Code, rec.Body.String())
	}
	var lesson struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &lesson)

	rec = doJSON(t, h, http.MethodPatch, "/api/students/stu_1/lessons/"+lesson.ID, `{"status":"completed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set status: %d body: %s", rec.Code, rec.Body.String())
	}
	var patched struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &patched)
	if patched.Status != "completed" {
		t.Errorf("status: %q", patched.Status)
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/students/stu_1/lessons/"+lesson.ID, `{"status":"done"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown status: want 400, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/students/stu_1/lessons/les_missing", `{"status":"completed"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing lesson: want 404, got %d", rec.Code)
	}
}

func TestUpdateHomeworkRejectsUnknownStatus(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/students/stu_1/homework", `{
		"tutorId": "tut_1",
		"subject": "English",
		"title": "Reading log",
		"dueDate": "2024-04-01"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add homework: %d body: %s", rec.Code, rec.Body.String())
	}
	var hw struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &hw)

	rec = doJSON(t, h, http.MethodPatch, "/api/students/stu_1/homework/"+hw.ID, `{"status":"overdue"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown status: want 400, got %d body: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/students/stu_1/homework/"+hw.ID, `{"status":"submitted"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("valid status: want 200, got %d body: %s", rec.Code, rec.Body.String())
	}
}

func TestBookingQRContentType(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/bookings", `{
		"parentName": "Mia",
		"email": "mia@x.com",
		"childName": "Ned",
		"lessonType": "one_to_one",
		"date": "2024-03-06",
		"slot": "09:00-11:00"
	}`)
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	rec = doJSON(t, h, http.MethodGet, "/qr/"+created.ID+".png", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("qr: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type: %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty png body")
	}
}
