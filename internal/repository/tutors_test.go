package repository

import (
	"testing"

	"github.com/edulane/tutorhub/internal/models"
)

func TestTutorApprovalFlow(t *testing.T) {
	r := newTestRepos(t).Tutors

	created, err := r.Create(models.Tutor{Name: "Hana", Email: "hana@x.com", HourlyRate: 30, CommissionRate: 0.2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != models.ApprovalPending {
		t.Errorf("new tutor status: want pending, got %s", created.Status)
	}

	approved, err := r.SetApproval(created.ID, models.ApprovalApproved)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != models.ApprovalApproved {
		t.Errorf("status not applied: %+v", approved)
	}

	pending, _ := r.ListByStatus(models.ApprovalPending)
	if len(pending) != 0 {
		t.Errorf("still listed as pending: %+v", pending)
	}
}

func TestAddEarningsBumpsCumulativeTotal(t *testing.T) {
	r := newTestRepos(t).Tutors
	tut, _ := r.Create(models.Tutor{Name: "Ira", Email: "ira@x.com"})

	e, err := r.AddEarnings(models.EarningsEntry{TutorID: tut.ID, BookingID: "bk_1", Gross: 60, Commission: 12, Net: 48})
	if err != nil {
		t.Fatalf("add earnings: %v", err)
	}
	if e.ID == "" || e.Month == "" {
		t.Errorf("earnings entry not stamped: %+v", e)
	}
	_, err = r.AddEarnings(models.EarningsEntry{TutorID: tut.ID, BookingID: "bk_2", Gross: 40, Commission: 8, Net: 32})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	got, _ := r.Get(tut.ID)
	if got.TotalEarnings != 80 {
		t.Errorf("cumulative earnings: want 80, got %v", got.TotalEarnings)
	}
	ledger, _ := r.ListEarnings(tut.ID)
	if len(ledger) != 2 {
		t.Errorf("ledger length: want 2, got %d", len(ledger))
	}
}

func TestPayoutSettingsUpsertKeepsOnePerTutor(t *testing.T) {
	r := newTestRepos(t).Tutors

	first, err := r.UpsertPayoutSettings(models.PayoutSettings{TutorID: "tut_1", Method: "paypal", AccountRef: "a@b.com"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second, err := r.UpsertPayoutSettings(models.PayoutSettings{TutorID: "tut_1", Method: "bank_transfer", AccountRef: "12-34-56"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert duplicated settings: %s vs %s", second.ID, first.ID)
	}
	if second.Method != "bank_transfer" || second.AccountRef != "12-34-56" {
		t.Errorf("update not applied: %+v", second)
	}

	got, _ := r.GetPayoutSettings("tut_1")
	if got == nil || got.Method != "bank_transfer" {
		t.Errorf("get: %+v", got)
	}
}

func TestAvailabilitySlots(t *testing.T) {
	r := newTestRepos(t).Tutors

	slot, _ := r.AddSlot(models.AvailabilitySlot{TutorID: "tut_1", Day: "monday", Slot: "16:00-18:00"})
	_, _ = r.AddSlot(models.AvailabilitySlot{TutorID: "tut_2", Day: "tuesday", Slot: "10:00-12:00"})

	mine, _ := r.ListSlots("tut_1")
	if len(mine) != 1 || mine[0].Day != "monday" {
		t.Errorf("list slots: %+v", mine)
	}

	booked, _ := r.MarkSlotBooked(slot.ID, true)
	if booked == nil || !booked.Booked {
		t.Errorf("mark booked: %+v", booked)
	}

	removed, _ := r.DeleteSlot(slot.ID)
	if !removed {
		t.Error("delete slot reported nothing removed")
	}
}
