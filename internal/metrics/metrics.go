// Package metrics derives dashboard figures from full in-memory scans
// of the relevant collections. Everything is recomputed per request;
// collections are expected to stay demo-scale.
package metrics

import (
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/edulane/tutorhub/internal/models"
)

// Summary is the single-pass fold over the bookings collection.
// Cancelled bookings are excluded from TotalRevenue and RevenueTrend but
// still counted in ByStatus.
type Summary struct {
	TotalBookings    int                `json:"totalBookings"`
	TotalRevenue     float64            `json:"totalRevenue"`
	LessonsThisMonth int                `json:"lessonsThisMonth"`
	ActiveParents    int                `json:"activeParents"`
	ByMonth          map[string]int     `json:"byMonth"`
	BySubject        map[string]int     `json:"bySubject"`
	ByStatus         map[string]int     `json:"byStatus"`
	ByDay            map[string]int     `json:"byDay"`
	RevenueTrend     map[string]float64 `json:"revenueTrend"`
}

// Calc folds over bookings relative to the current wall clock.
func Calc(bookings []models.Booking) Summary {
	return CalcAt(bookings, time.Now().UTC())
}

// CalcAt is Calc with an injected "now", so the lessons-this-month
// figure is testable.
func CalcAt(bookings []models.Booking, now time.Time) Summary {
	s := Summary{
		ByMonth:      map[string]int{},
		BySubject:    map[string]int{},
		ByStatus:     map[string]int{},
		ByDay:        map[string]int{},
		RevenueTrend: map[string]float64{},
	}
	thisMonth := now.Format("2006-01")
	parents := map[string]struct{}{}

	for _, b := range bookings {
		s.TotalBookings++
		s.ByStatus[string(b.Status)]++
		if b.Subject != "" {
			s.BySubject[b.Subject]++
		}
		if b.ParentID != "" {
			parents[b.ParentID] = struct{}{}
		}

		month := monthKey(b.Date)
		if month != "" {
			s.ByMonth[month]++
			if month == thisMonth {
				s.LessonsThisMonth++
			}
		}
		if b.Date != "" {
			s.ByDay[b.Date]++
		}

		if b.Status == models.BookingCancelled {
			continue
		}
		s.TotalRevenue += b.Total
		if month != "" {
			s.RevenueTrend[month] += b.Total
		}
	}

	s.ActiveParents = len(parents)
	return s
}

// monthKey extracts "2006-01" from a "2006-01-02" date string.
func monthKey(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

type SubjectCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopSubjects sorts subject counts descending and takes the first
// limit entries. Ties break alphabetically so output is stable.
func TopSubjects(bySubject map[string]int, limit int) []SubjectCount {
	out := make([]SubjectCount, 0, len(bySubject))
	for name, count := range bySubject {
		out = append(out, SubjectCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

type MonthRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// RevenueByMonth orders the revenue trend chronologically. A
// lexicographic sort is enough because keys are "YYYY-MM".
func RevenueByMonth(trend map[string]float64) []MonthRevenue {
	months := make([]string, 0, len(trend))
	for m := range trend {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]MonthRevenue, 0, len(months))
	for _, m := range months {
		out = append(out, MonthRevenue{Month: m, Amount: trend[m]})
	}
	return out
}

type TutorSummary struct {
	Total         int     `json:"total"`
	Approved      int     `json:"approved"`
	Pending       int     `json:"pending"`
	Rejected      int     `json:"rejected"`
	TotalEarnings float64 `json:"totalEarnings"`
}

func TutorStats(tutors []models.Tutor) TutorSummary {
	var s TutorSummary
	for _, t := range tutors {
		s.Total++
		switch t.Status {
		case models.ApprovalApproved:
			s.Approved++
		case models.ApprovalRejected:
			s.Rejected++
		default:
			s.Pending++
		}
		s.TotalEarnings += t.TotalEarnings
	}
	return s
}

var gbp = message.NewPrinter(language.BritishEnglish)

// FormatCurrency renders an amount as GBP with en-GB digit grouping,
// e.g. 1234.5 -> "£1,234.50". The sign sits outside the symbol.
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := gbp.Sprintf("£%.2f", amount)
	if neg {
		return "-" + s
	}
	return s
}
