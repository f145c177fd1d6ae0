package models

import "testing"

func assertRosterInvariant(t *testing.T, d *BookingDraft) {
	t.Helper()
	if d.Pax < 1 {
		t.Fatalf("pax dropped below 1: %d", d.Pax)
	}
	if d.Pax != 1+len(d.Companions) {
		t.Fatalf("invariant broken: pax=%d companions=%d", d.Pax, len(d.Companions))
	}
}

func TestRosterInvariantUnderOperationSequence(t *testing.T) {
	d := NewBookingDraft()
	assertRosterInvariant(t, d)

	ops := []func(){
		func() { d.AddCompanion() },
		func() { d.AddCompanion() },
		func() { d.SetPax(5) },
		func() { d.RemoveLastCompanion() },
		func() { d.RemoveCompanionAt(1) },
		func() { d.SetPax(0) },
		func() { d.RemoveLastCompanion() },
		func() { d.RemoveCompanionAt(0) },
		func() { d.SetPax(3) },
		func() { d.AddCompanion() },
	}
	for _, op := range ops {
		op()
		assertRosterInvariant(t, d)
	}
}

func TestIncrementThreeTimes(t *testing.T) {
	d := NewBookingDraft()
	d.AddCompanion()
	d.AddCompanion()
	d.AddCompanion()

	if d.Pax != 4 {
		t.Errorf("expected pax 4, got %d", d.Pax)
	}
	if len(d.Companions) != 3 {
		t.Errorf("expected 3 companions, got %d", len(d.Companions))
	}
}

func TestDecrementNeverDropsBelowOne(t *testing.T) {
	d := NewBookingDraft()
	d.RemoveLastCompanion()
	d.RemoveLastCompanion()

	if d.Pax != 1 {
		t.Errorf("expected pax 1, got %d", d.Pax)
	}
	assertRosterInvariant(t, d)
}

func TestSetPaxResizesCompanions(t *testing.T) {
	d := NewBookingDraft()
	d.SetPax(4)
	if len(d.Companions) != 3 {
		t.Fatalf("expected 3 blank companions, got %d", len(d.Companions))
	}

	d.SetCompanion(0, "Fatimah", "+628111")
	d.SetPax(2)
	if len(d.Companions) != 1 {
		t.Fatalf("expected truncation to 1 companion, got %d", len(d.Companions))
	}
	if d.Companions[0].Name != "Fatimah" {
		t.Errorf("truncation should drop from the tail, kept %q", d.Companions[0].Name)
	}

	// free-text edits below 1 are clamped, not rejected
	d.SetPax(-2)
	if d.Pax != 1 || len(d.Companions) != 0 {
		t.Errorf("expected clamp to pax 1 with no companions, got pax=%d companions=%d", d.Pax, len(d.Companions))
	}
}

func TestRemoveCompanionAtKeepsTheOther(t *testing.T) {
	d := NewBookingDraft()
	d.AddCompanion()
	d.AddCompanion()
	d.SetCompanion(0, "Ahmad", "")
	d.SetCompanion(1, "Siti", "")

	removed, ok := d.RemoveCompanionAt(0)
	if !ok {
		t.Fatal("expected removal to succeed")
	}
	if removed.Name != "Ahmad" {
		t.Errorf("expected Ahmad removed, got %q", removed.Name)
	}
	if d.Pax != 2 || len(d.Companions) != 1 {
		t.Errorf("expected pax 2 with 1 companion, got pax=%d companions=%d", d.Pax, len(d.Companions))
	}
	if d.Companions[0].Name != "Siti" {
		t.Errorf("expected Siti to remain, got %q", d.Companions[0].Name)
	}
}

func TestRemoveCompanionAtOutOfRange(t *testing.T) {
	d := NewBookingDraft()
	if _, ok := d.RemoveCompanionAt(0); ok {
		t.Error("expected removal to fail on empty roster")
	}
	assertRosterInvariant(t, d)
}

func TestSetCodesUppercases(t *testing.T) {
	d := NewBookingDraft()
	d.SetCodes("ramadhan24", " agent7 ")
	if d.VoucherCode != "RAMADHAN24" {
		t.Errorf("expected RAMADHAN24, got %q", d.VoucherCode)
	}
	if d.ReferralCode != "AGENT7" {
		t.Errorf("expected AGENT7, got %q", d.ReferralCode)
	}
}

func TestValidateForSubmit(t *testing.T) {
	d := NewBookingDraft()
	if err := d.ValidateForSubmit(); err == nil {
		t.Fatal("expected empty draft to fail validation")
	}

	d.PrimaryContact = PrimaryContact{Name: "Ahmad", Email: "ahmad@example.com", Password: "secret123", Phone: "+628123"}
	if err := d.ValidateForSubmit(); err != nil {
		t.Fatalf("expected complete contact to pass, got %v", err)
	}

	d.PrimaryContact.Email = "not-an-email"
	if err := d.ValidateForSubmit(); err == nil {
		t.Error("expected malformed email to fail validation")
	}
}
