package services

import (
	"context"
	"fmt"

	"github.com/alhijaztravel/safarbay/internal/cache"
	"github.com/alhijaztravel/safarbay/internal/gateway"
	"github.com/alhijaztravel/safarbay/internal/models"
)

// In-memory stand-ins for the provider, the document store and the flag
// store. They mirror the real implementations' contracts: sign-up refuses a
// known email, profile creation never overwrites, booking save upserts.

type fakeIdentityRepo struct {
	passwords   map[string]string // email -> password
	ids         map[string]string // email -> account id
	nextID      int
	signUpCalls int
	signInCalls int
	failUpdate  bool
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{
		passwords: make(map[string]string),
		ids:       make(map[string]string),
	}
}

func (f *fakeIdentityRepo) SignUp(ctx context.Context, email, password string) (*models.AuthAccount, error) {
	f.signUpCalls++
	if _, exists := f.passwords[email]; exists {
		return nil, models.ErrAlreadyRegistered
	}
	f.nextID++
	id := fmt.Sprintf("user-%d", f.nextID)
	f.passwords[email] = password
	f.ids[email] = id
	return &models.AuthAccount{ID: id, AccessToken: "token-" + id}, nil
}

func (f *fakeIdentityRepo) SignIn(ctx context.Context, email, password string) (*models.AuthAccount, error) {
	f.signInCalls++
	stored, exists := f.passwords[email]
	if !exists || stored != password {
		return nil, fmt.Errorf("failed to authenticate user: invalid credentials")
	}
	id := f.ids[email]
	return &models.AuthAccount{ID: id, AccessToken: "token-" + id}, nil
}

func (f *fakeIdentityRepo) UpdateDisplayName(ctx context.Context, accessToken, name, phone string) error {
	if f.failUpdate {
		return fmt.Errorf("metadata update unavailable")
	}
	return nil
}

type fakeProfileRepo struct {
	profiles   map[string]*models.UserProfile
	failCreate bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.UserProfile)}
}

func (f *fakeProfileRepo) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	if f.failCreate {
		return fmt.Errorf("profile write refused")
	}
	if _, exists := f.profiles[profile.ID]; exists {
		return nil // setOnInsert: existing profiles are untouched
	}
	copied := *profile
	f.profiles[profile.ID] = &copied
	return nil
}

func (f *fakeProfileRepo) GetProfileByID(ctx context.Context, id string) (*models.UserProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s not found", id)
	}
	return profile, nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.BookingRecord
	saves    int
	failSave bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.BookingRecord)}
}

func (f *fakeBookingRepo) SaveBooking(ctx context.Context, booking *models.BookingRecord) error {
	if f.failSave {
		return fmt.Errorf("write refused")
	}
	f.saves++
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) GetBookingByOrderID(ctx context.Context, orderID string) (*models.BookingRecord, error) {
	booking, ok := f.bookings[orderID]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", orderID)
	}
	return booking, nil
}

func (f *fakeBookingRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*models.BookingRecord, error) {
	var out []*models.BookingRecord
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakePackageRepo struct {
	packages map[string]*models.TravelPackage
}

func newFakePackageRepo(pkgs ...*models.TravelPackage) *fakePackageRepo {
	repo := &fakePackageRepo{packages: make(map[string]*models.TravelPackage)}
	for _, p := range pkgs {
		repo.packages[p.ID] = p
	}
	return repo
}

func (f *fakePackageRepo) GetPackageByID(ctx context.Context, id string) (*models.TravelPackage, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, fmt.Errorf("package %s not found", id)
	}
	return pkg, nil
}

func (f *fakePackageRepo) ListPackages(ctx context.Context) ([]*models.TravelPackage, error) {
	var out []*models.TravelPackage
	for _, p := range f.packages {
		out = append(out, p)
	}
	return out, nil
}

type fakeTokenSource struct {
	calls  int
	fail   bool
	orders []string
}

func (f *fakeTokenSource) CreateToken(ctx context.Context, orderID string, grossAmount int64, customer gateway.CustomerDetails) (string, error) {
	f.calls++
	if f.fail {
		return "", &models.GatewayError{Detail: "transaction details are invalid"}
	}
	f.orders = append(f.orders, orderID)
	return fmt.Sprintf("snap-token-%d", f.calls), nil
}

type fakeWelcomeStore struct {
	flags map[string]cache.WelcomePayload
}

func newFakeWelcomeStore() *fakeWelcomeStore {
	return &fakeWelcomeStore{flags: make(map[string]cache.WelcomePayload)}
}

func (f *fakeWelcomeStore) Set(ctx context.Context, userID string, payload cache.WelcomePayload) error {
	f.flags[userID] = payload
	return nil
}

func (f *fakeWelcomeStore) Consume(ctx context.Context, userID string) (*cache.WelcomePayload, error) {
	payload, ok := f.flags[userID]
	if !ok {
		return nil, nil
	}
	delete(f.flags, userID)
	return &payload, nil
}
