package models

import "strings"

// PrimaryContact is the person booking the trip. All four fields must be
// non-empty before the draft can be submitted.
type PrimaryContact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
}

type Companion struct {
	Name     string `json:"name"`
	Whatsapp string `json:"whatsapp"`
}

// BookingDraft holds one checkout attempt while the user is still filling in
// the form. It is never persisted directly; a derived BookingRecord is written
// after payment success. Invariant: Pax == 1 + len(Companions) and Pax >= 1
// after every roster operation.
type BookingDraft struct {
	PrimaryContact PrimaryContact `json:"primary_contact"`
	Pax            int            `json:"pax"`
	Companions     []Companion    `json:"companions"`
	ReferralCode   string         `json:"referral_code"`
	VoucherCode    string         `json:"voucher_code"`
}

func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		Pax:        1,
		Companions: []Companion{},
	}
}

// AddCompanion bumps pax by one and appends a blank companion row.
func (d *BookingDraft) AddCompanion() {
	d.Pax++
	d.Companions = append(d.Companions, Companion{})
}

// RemoveLastCompanion lowers pax by one, never below 1, dropping the last
// companion row with it.
func (d *BookingDraft) RemoveLastCompanion() {
	if d.Pax <= 1 {
		d.Pax = 1
		return
	}
	d.Pax--
	d.Companions = d.Companions[:len(d.Companions)-1]
}

// SetPax handles a free-text pax edit. Values below 1 are clamped, not
// rejected, and the companion list is resized to match: truncated from the
// tail or padded with blank rows.
func (d *BookingDraft) SetPax(n int) {
	if n < 1 {
		n = 1
	}
	d.Pax = n

	want := n - 1
	if len(d.Companions) > want {
		d.Companions = d.Companions[:want]
		return
	}
	for len(d.Companions) < want {
		d.Companions = append(d.Companions, Companion{})
	}
}

// RemoveCompanionAt removes companion i and lowers pax by exactly one. The
// primary contact is never removable, so pax cannot drop below 1 this way.
// Returns the removed companion so the caller can show a transient notice,
// and false when the index is out of range.
func (d *BookingDraft) RemoveCompanionAt(i int) (Companion, bool) {
	if i < 0 || i >= len(d.Companions) {
		return Companion{}, false
	}
	removed := d.Companions[i]
	d.Companions = append(d.Companions[:i], d.Companions[i+1:]...)
	d.Pax--
	if d.Pax < 1 {
		d.Pax = 1
	}
	return removed, true
}

// SetCompanion updates companion i in place.
func (d *BookingDraft) SetCompanion(i int, name, whatsapp string) bool {
	if i < 0 || i >= len(d.Companions) {
		return false
	}
	d.Companions[i] = Companion{Name: strings.TrimSpace(name), Whatsapp: strings.TrimSpace(whatsapp)}
	return true
}

// SetCodes stores the referral and voucher codes, upper-cased.
func (d *BookingDraft) SetCodes(voucher, referral string) {
	d.VoucherCode = strings.ToUpper(strings.TrimSpace(voucher))
	d.ReferralCode = strings.ToUpper(strings.TrimSpace(referral))
}

// ValidateForSubmit checks the primary contact before any network call.
func (d *BookingDraft) ValidateForSubmit() error {
	c := d.PrimaryContact
	switch {
	case strings.TrimSpace(c.Name) == "":
		return &ValidationError{Field: "name", Reason: "is required"}
	case strings.TrimSpace(c.Email) == "":
		return &ValidationError{Field: "email", Reason: "is required"}
	case strings.TrimSpace(c.Password) == "":
		return &ValidationError{Field: "password", Reason: "is required"}
	case strings.TrimSpace(c.Phone) == "":
		return &ValidationError{Field: "phone", Reason: "is required"}
	}
	if err := Validate.Var(d.PrimaryContact.Email, "required,email"); err != nil {
		return &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}
	return nil
}
