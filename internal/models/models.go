package models

import "time"

type LessonType string

const (
	LessonOneToOne LessonType = "one_to_one"
	LessonGroup    LessonType = "group"
)

func (t LessonType) Valid() bool {
	return t == LessonOneToOne || t == LessonGroup
}

type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingCompleted   BookingStatus = "completed"
	BookingCancelled   BookingStatus = "cancelled"
	BookingRescheduled BookingStatus = "rescheduled"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTutor   Role = "tutor"
	RoleParent  Role = "parent"
	RoleStudent Role = "student"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type HomeworkStatus string

const (
	HomeworkAssigned  HomeworkStatus = "assigned"
	HomeworkSubmitted HomeworkStatus = "submitted"
	HomeworkGraded    HomeworkStatus = "graded"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Booking is a lesson booked by a parent for a child. TutorID stays
// empty until an admin assigns one. Dates are "2006-01-02" strings and
// Slot is a display string like "09:00-11:00", matching what the forms
// submit.
type Booking struct {
	ID          string        `json:"id"`
	ParentID    string        `json:"parentId"`
	ParentName  string        `json:"parentName"`
	Email       string        `json:"email"`
	StudentName string        `json:"studentName"`
	TutorID     string        `json:"tutorId,omitempty"`
	Subject     string        `json:"subject,omitempty"`
	LessonType  LessonType    `json:"lessonType"`
	PupilsCount int           `json:"pupilsCount,omitempty"`
	Date        string        `json:"date"`
	Slot        string        `json:"slot"`
	Hours       float64       `json:"hours"`
	Rate        float64       `json:"rate"`
	Total       float64       `json:"total"`
	Currency    string        `json:"currency"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// User covers all four roles; email is the unique handle
// (case-insensitive).
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Verified  bool      `json:"verified"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tutor struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId,omitempty"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Subjects       []string       `json:"subjects"`
	HourlyRate     float64        `json:"hourlyRate"`
	Status         ApprovalStatus `json:"status"`
	CommissionRate float64        `json:"commissionRate"`
	TotalEarnings  float64        `json:"totalEarnings"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type Payment struct {
	ID             string        `json:"id"`
	BookingID      string        `json:"bookingId"`
	ParentID       string        `json:"parentId"`
	TutorID        string        `json:"tutorId,omitempty"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	Status         PaymentStatus `json:"status"`
	TransactionRef string        `json:"transactionRef"`
	TransactionAt  time.Time     `json:"transactionAt"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// SubjectConfig is keyed by its Name when updated or deleted; the name
// acts as the natural key exactly as the admin screens treat it.
type SubjectConfig struct {
	Name            string    `json:"name"`
	RecommendedRate float64   `json:"recommendedRate"`
	DurationHours   float64   `json:"durationHours"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Audience  Role      `json:"audience"`
	CreatedAt time.Time `json:"createdAt"`
}

type Material struct {
	ID        string    `json:"id"`
	TutorID   string    `json:"tutorId"`
	StudentID string    `json:"studentId,omitempty"`
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type Conversation struct {
	ID            string    `json:"id"`
	Participants  []string  `json:"participants"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Body           string    `json:"body"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AvailabilitySlot struct {
	ID        string    `json:"id"`
	TutorID   string    `json:"tutorId"`
	Day       string    `json:"day"` // e.g. "monday"
	Slot      string    `json:"slot"`
	Booked    bool      `json:"booked"`
	CreatedAt time.Time `json:"createdAt"`
}

type EarningsEntry struct {
	ID         string    `json:"id"`
	TutorID    string    `json:"tutorId"`
	BookingID  string    `json:"bookingId"`
	Gross      float64   `json:"gross"`
	Commission float64   `json:"commission"`
	Net        float64   `json:"net"`
	Month      string    `json:"month"` // "2006-01"
	CreatedAt  time.Time `json:"createdAt"`
}

type PayoutSettings struct {
	ID         string    `json:"id"`
	TutorID    string    `json:"tutorId"`
	Method     string    `json:"method"` // bank_transfer | paypal
	AccountRef string    `json:"accountRef"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type LessonNote struct {
	ID        string    `json:"id"`
	TutorID   string    `json:"tutorId"`
	BookingID string    `json:"bookingId"`
	StudentID string    `json:"studentId,omitempty"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

type StudentProfile struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parentId"`
	Name      string    `json:"name"`
	YearGroup string    `json:"yearGroup"`
	Subjects  []string  `json:"subjects"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StudentLesson struct {
	ID        string        `json:"id"`
	StudentID string        `json:"studentId"`
	TutorID   string        `json:"tutorId"`
	Subject   string        `json:"subject"`
	Date      string        `json:"date"`
	Slot      string        `json:"slot"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

type Homework struct {
	ID        string         `json:"id"`
	StudentID string         `json:"studentId"`
	TutorID   string         `json:"tutorId"`
	Subject   string         `json:"subject"`
	Title     string         `json:"title"`
	DueDate   string         `json:"dueDate"`
	Status    HomeworkStatus `json:"status"`
	Grade     string         `json:"grade,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type ProgressReport struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	Subject   string    `json:"subject"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	Period    string    `json:"period"` // "2006-01"
	CreatedAt time.Time `json:"createdAt"`
}

type AttendanceRecord struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId"`
	LessonID  string           `json:"lessonId"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}

type Parent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Child struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parentId"`
	Name      string    `json:"name"`
	YearGroup string    `json:"yearGroup"`
	Subjects  []string  `json:"subjects"`
	CreatedAt time.Time `json:"createdAt"`
}
