package service

import (
	"context"
	"sync"
	"time"

	"seatsync/internal/domain/constant"
	"seatsync/internal/domain/entity"
)

// memArchive is an in-memory ArchiveRepository.
type memArchive struct {
	mu    sync.Mutex
	files map[string]*entity.ReservationArchive
}

func newMemArchive() *memArchive {
	return &memArchive{files: make(map[string]*entity.ReservationArchive)}
}

func (m *memArchive) Load(ctx context.Context, username string) (*entity.ReservationArchive, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[username], nil
}

func (m *memArchive) Save(ctx context.Context, username string, archive *entity.ReservationArchive) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[username] = archive
	return nil
}

func (m *memArchive) Delete(ctx context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, username)
	return nil
}

func (m *memArchive) has(username string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[username]
	return ok
}

// captureSink records the pending-alert set keyed by identifier, mirroring
// the replace-by-identifier contract of the real sink.
type captureSink struct {
	mu      sync.Mutex
	pending map[constant.AlertID]*entity.ScheduledAlert
}

func newCaptureSink() *captureSink {
	return &captureSink{pending: make(map[constant.AlertID]*entity.ScheduledAlert)}
}

func (s *captureSink) Schedule(alert *entity.ScheduledAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[alert.ID] = alert
	return nil
}

func (s *captureSink) Cancel(ids ...constant.AlertID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.pending, id)
	}
}

func (s *captureSink) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = make(map[constant.AlertID]*entity.ScheduledAlert)
}

func (s *captureSink) get(id constant.AlertID) (*entity.ScheduledAlert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	alert, ok := s.pending[id]
	return alert, ok
}

func (s *captureSink) ids() map[constant.AlertID]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[constant.AlertID]bool, len(s.pending))
	for id := range s.pending {
		out[id] = true
	}
	return out
}

// fakeSeat is a scriptable SeatService.
type fakeSeat struct {
	mu          sync.Mutex
	token       string
	loginErr    error
	fetchErr    error
	cancelErr   error
	pages       map[int][]*entity.SeatReservation
	loginCalls  int
	fetchCalls  int
	cancelCalls int
	cancelledID int
}

func (f *fakeSeat) Login(ctx context.Context, username, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.token = "tok-" + username
	return f.token, nil
}

func (f *fakeSeat) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeSeat) FetchHistory(ctx context.Context, page int) ([]*entity.SeatReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.pages[page], nil
}

func (f *fakeSeat) Cancel(ctx context.Context, reservationID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelCalls++
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = reservationID
	return nil
}

// fakeAccounts is an in-memory AccountRepository.
type fakeAccounts struct {
	mu       sync.Mutex
	accounts map[string]*entity.UserAccount
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{accounts: make(map[string]*entity.UserAccount)}
}

func (f *fakeAccounts) FindActive(ctx context.Context) (*entity.UserAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.Active {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) Save(ctx context.Context, account *entity.UserAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account.Active {
		for _, other := range f.accounts {
			if other.Username != account.Username {
				other.Active = false
			}
		}
	}
	f.accounts[account.Username] = account
	return nil
}

func (f *fakeAccounts) Delete(ctx context.Context, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, username)
	return nil
}

// fakePrefs is an in-memory PreferenceRepository defaulting to everything
// enabled, like the real one.
type fakePrefs struct {
	mu    sync.Mutex
	prefs map[string]*entity.NotificationPreferences
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{prefs: make(map[string]*entity.NotificationPreferences)}
}

func (f *fakePrefs) Find(ctx context.Context, username string) (*entity.NotificationPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if prefs, ok := f.prefs[username]; ok {
		return prefs, nil
	}
	return entity.DefaultPreferences(username), nil
}

func (f *fakePrefs) Save(ctx context.Context, prefs *entity.NotificationPreferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs[prefs.Username] = prefs
	return nil
}

func (f *fakePrefs) Delete(ctx context.Context, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.prefs, username)
	return nil
}

// fakeCompanion records every transferred snapshot.
type fakeCompanion struct {
	mu        sync.Mutex
	snapshots []*entity.SeatReservation
}

func (f *fakeCompanion) Transfer(reservation *entity.SeatReservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots = append(f.snapshots, reservation)
}

func (f *fakeCompanion) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.snapshots)
}

func testReservation(id int, start, end time.Time) *entity.SeatReservation {
	return &entity.SeatReservation{
		ID:          id,
		RawLocation: "RoomA-12",
		Time:        entity.ReservationTime{Start: start, End: end},
		State:       entity.ReservationState{Kind: entity.StateNormal},
	}
}
