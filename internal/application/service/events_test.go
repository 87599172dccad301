package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatsync/internal/domain/constant"
	"seatsync/internal/domain/entity"
	"seatsync/internal/pkg/clock"
	appErrors "seatsync/internal/pkg/errors"
	"seatsync/internal/pkg/logger"
)

type eventFixture struct {
	events    EventService
	store     StoreService
	seat      *fakeSeat
	sink      *captureSink
	archive   *memArchive
	accounts  *fakeAccounts
	prefs     *fakePrefs
	companion *fakeCompanion
}

func newEventFixture(t *testing.T, now time.Time) *eventFixture {
	t.Helper()
	log := logger.New()
	f := &eventFixture{
		seat:      &fakeSeat{},
		sink:      newCaptureSink(),
		archive:   newMemArchive(),
		accounts:  newFakeAccounts(),
		prefs:     newFakePrefs(),
		companion: &fakeCompanion{},
	}
	f.store = NewStoreService(f.archive, log)
	notifier := NewNotificationService(f.sink, clock.Fixed(now), 22, 50, log)
	f.events = NewEventService(f.seat, f.store, notifier, f.accounts, f.prefs, f.companion, log)
	return f
}

func TestAccountLogin_LoadsArchiveAndRecomputes(t *testing.T) {
	now := time.Date(2018, 5, 17, 9, 0, 0, 0, time.UTC)
	f := newEventFixture(t, now)
	ctx := context.Background()

	// A previous run left an archive with a live reservation behind.
	current := testReservation(5, now.Add(time.Hour), now.Add(3*time.Hour))
	require.NoError(t, f.archive.Save(ctx, "ppg", &entity.ReservationArchive{
		Reservation: current,
		History:     []*entity.SeatReservation{current},
	}))

	account, err := f.events.AccountLogin(ctx, "ppg", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ppg", account.Username)
	assert.Equal(t, 1, f.seat.loginCalls)

	require.NotNil(t, f.store.Current())
	assert.Equal(t, 5, f.store.Current().ID)
	// The loaded reservation produced alerts.
	ids := f.sink.ids()
	assert.True(t, ids[constant.AlertUpcoming])
	assert.True(t, ids[constant.AlertEnd])
	// Change handler ran: clear once, load once.
	assert.Equal(t, 2, f.companion.count())

	saved, err := f.accounts.FindActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "ppg", saved.Username)
}

func TestAccountLogin_FailurePropagatesWithoutStateChange(t *testing.T) {
	now := time.Date(2018, 5, 17, 9, 0, 0, 0, time.UTC)
	f := newEventFixture(t, now)
	f.seat.loginErr = &appErrors.FailedError{Code: "12", Message: "wrong password"}

	_, err := f.events.AccountLogin(context.Background(), "ppg", "bad")
	require.Error(t, err)
	assert.Nil(t, f.store.Account())
	assert.Zero(t, f.companion.count())
}

func TestAccountLogout_DeletesArchiveBeforeNextLogin(t *testing.T) {
	now := time.Date(2018, 5, 17, 9, 0, 0, 0, time.UTC)
	f := newEventFixture(t, now)
	ctx := context.Background()

	_, err := f.events.AccountLogin(ctx, "alice", "secret")
	require.NoError(t, err)
	aliceRes := testReservation(1, now.Add(time.Hour), now.Add(2*time.Hour))
	f.store.Replace(ctx, aliceRes, []*entity.SeatReservation{aliceRes})
	require.NoError(t, f.store.Save(ctx))
	require.True(t, f.archive.has("alice"))

	require.NoError(t, f.events.AccountLogout(ctx))
	assert.False(t, f.archive.has("alice"))
	assert.Nil(t, f.store.Account())

	// Bob logs in right after: no trace of Alice may remain.
	_, err = f.events.AccountLogin(ctx, "bob", "secret")
	require.NoError(t, err)
	assert.Nil(t, f.store.Current())
	assert.Empty(t, f.store.History())
}

func TestAccountLogout_WithoutAccount(t *testing.T) {
	f := newEventFixture(t, time.Now())
	assert.ErrorIs(t, f.events.AccountLogout(context.Background()), appErrors.ErrNoAccount)
}

func TestPreferencesChanged_DisableCancelsEverything(t *testing.T) {
	now := time.Date(2018, 5, 17, 9, 0, 0, 0, time.UTC)
	f := newEventFixture(t, now)
	ctx := context.Background()

	_, err := f.events.AccountLogin(ctx, "ppg", "secret")
	require.NoError(t, err)
	f.store.SetReservation(ctx, testReservation(1, now.Add(time.Hour), now.Add(3*time.Hour)))
	require.NotEmpty(t, f.sink.ids())

	prefs := entity.DefaultPreferences("ppg")
	prefs.Enabled = false
	require.NoError(t, f.events.PreferencesChanged(ctx, prefs))

	assert.Empty(t, f.sink.ids())
	// Preference storage itself is untouched by the cancel, the new values
	// are persisted.
	stored, err := f.prefs.Find(ctx, "ppg")
	require.NoError(t, err)
	assert.False(t, stored.Enabled)
}

func TestPreferencesChanged_ReenableRestoresAlerts(t *testing.T) {
	now := time.Date(2018, 5, 17, 9, 0, 0, 0, time.UTC)
	f := newEventFixture(t, now)
	ctx := context.Background()

	_, err := f.events.AccountLogin(ctx, "ppg", "secret")
	require.NoError(t, err)
	f.store.SetReservation(ctx, testReservation(1, now.Add(time.Hour), now.Add(3*time.Hour)))

	off := entity.DefaultPreferences("ppg")
	off.Enabled = false
	require.NoError(t, f.events.PreferencesChanged(ctx, off))
	require.Empty(t, f.sink.ids())

	require.NoError(t, f.events.PreferencesChanged(ctx, entity.DefaultPreferences("ppg")))
	ids := f.sink.ids()
	assert.True(t, ids[constant.AlertReserveOpen])
	assert.True(t, ids[constant.AlertUpcoming])
	assert.True(t, ids[constant.AlertEnd])
}

func TestPreferencesChanged_WithoutAccount(t *testing.T) {
	f := newEventFixture(t, time.Now())
	err := f.events.PreferencesChanged(context.Background(), entity.DefaultPreferences(""))
	assert.ErrorIs(t, err, appErrors.ErrNoAccount)
}

func TestReservationChange_TransfersAfterRecompute(t *testing.T) {
	now := time.Date(2018, 5, 17, 9, 0, 0, 0, time.UTC)
	f := newEventFixture(t, now)
	ctx := context.Background()

	_, err := f.events.AccountLogin(ctx, "ppg", "secret")
	require.NoError(t, err)
	start := f.companion.count()

	r := testReservation(3, now.Add(time.Hour), now.Add(2*time.Hour))
	f.store.SetReservation(ctx, r)

	assert.Equal(t, start+1, f.companion.count())
	assert.True(t, f.sink.ids()[constant.AlertUpcoming])
}
