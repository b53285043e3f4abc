package services

import "github.com/edulane/tutorhub/internal/models"

// Published rates in GBP per hour. Every bookable session runs two
// hours; group lessons cap at five pupils.
const (
	OneToOneRate = 30.0
	GroupRate    = 20.0
	SessionHours = 2.0
	MaxGroupSize = 5
	Currency     = "GBP"
)

type Quote struct {
	Rate     float64
	Hours    float64
	Pupils   int
	Total    float64
	Currency string
}

// PriceLesson computes the deterministic lesson price: one-to-one is
// rate x 2 hours; group is rate x 2 hours x pupil count clamped into
// [1, MaxGroupSize].
func PriceLesson(lt models.LessonType, pupils int) Quote {
	q := Quote{Hours: SessionHours, Currency: Currency}
	switch lt {
	case models.LessonGroup:
		if pupils < 1 {
			pupils = 1
		}
		if pupils > MaxGroupSize {
			pupils = MaxGroupSize
		}
		q.Rate = GroupRate
		q.Pupils = pupils
		q.Total = GroupRate * SessionHours * float64(pupils)
	default:
		q.Rate = OneToOneRate
		q.Pupils = 1
		q.Total = OneToOneRate * SessionHours
	}
	return q
}
