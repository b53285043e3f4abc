// Package repository exposes one CRUD repository per entity family, all
// built on the same whole-collection read/modify/write primitives of the
// store. Lookups are linear scans; cross-references between collections
// are plain strings and never enforced.
package repository

import "github.com/edulane/tutorhub/internal/store"

type Repositories struct {
	Bookings      *Bookings
	Users         *Users
	Tutors        *Tutors
	Payments      *Payments
	Subjects      *Subjects
	Announcements *Announcements
	Materials     *Materials
	Messages      *Messages
	Students      *Students
	Parents       *Parents
}

func New(s *store.Store) *Repositories {
	return &Repositories{
		Bookings:      NewBookings(s),
		Users:         NewUsers(s),
		Tutors:        NewTutors(s),
		Payments:      NewPayments(s),
		Subjects:      NewSubjects(s),
		Announcements: NewAnnouncements(s),
		Materials:     NewMaterials(s),
		Messages:      NewMessages(s),
		Students:      NewStudents(s),
		Parents:       NewParents(s),
	}
}
