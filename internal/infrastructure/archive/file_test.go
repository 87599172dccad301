package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatsync/internal/domain/entity"
	"seatsync/internal/pkg/logger"
)

func newTestRepo(t *testing.T) (*fileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := NewFileRepository(dir, logger.New())
	require.NoError(t, err)
	return repo.(*fileRepository), dir
}

func testArchive() *entity.ReservationArchive {
	start := time.Date(2018, 5, 17, 9, 50, 0, 0, time.UTC)
	current := &entity.SeatReservation{
		ID:          42,
		RawLocation: "RoomA-12",
		Time:        entity.ReservationTime{Start: start, End: start.Add(2 * time.Hour)},
		State:       entity.ReservationState{Kind: entity.StateNormal},
	}
	old := &entity.SeatReservation{
		ID:          41,
		RawLocation: "RoomB-3",
		Time:        entity.ReservationTime{Start: start.AddDate(0, 0, -1), End: start.AddDate(0, 0, -1).Add(time.Hour)},
		State:       entity.ReservationState{Kind: entity.StateCompleted},
	}
	return &entity.ReservationArchive{Reservation: current, History: []*entity.SeatReservation{current, old}}
}

func TestFileRepository_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	saved := testArchive()
	require.NoError(t, repo.Save(ctx, "ppg", saved))

	loaded, err := repo.Load(ctx, "ppg")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, loaded)
}

func TestFileRepository_LoadMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	loaded, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileRepository_LoadCorrupt(t *testing.T) {
	repo, dir := newTestRepo(t)
	path := filepath.Join(dir, filePrefix+"ppg"+fileExtension)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loaded, err := repo.Load(context.Background(), "ppg")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileRepository_DeleteAfterSave(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "ppg", testArchive()))
	require.NoError(t, repo.Delete(ctx, "ppg"))

	loaded, err := repo.Load(ctx, "ppg")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileRepository_DeleteMissing(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.NoError(t, repo.Delete(context.Background(), "nobody"))
}

func TestFileRepository_FilesAreNamespacedByAccount(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := testArchive()
	b := testArchive()
	b.Reservation.RawLocation = "RoomC-7"
	require.NoError(t, repo.Save(ctx, "alice", a))
	require.NoError(t, repo.Save(ctx, "bob", b))

	loadedA, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	loadedB, err := repo.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "RoomA-12", loadedA.Reservation.RawLocation)
	assert.Equal(t, "RoomC-7", loadedB.Reservation.RawLocation)
}
