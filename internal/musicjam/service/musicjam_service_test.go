package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/repository"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/service"
)

func setupService(t *testing.T) *service.MusicJamService {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	store := docstore.New(client)
	return service.NewMusicJamService(
		repository.NewSessionRepository(store),
		repository.NewPlaylistRepository(store),
	)
}

func dateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func seedSession(t *testing.T, svc *service.MusicJamService, session domain.JamSession) *domain.JamSession {
	t.Helper()
	require.NoError(t, svc.CreateSession(context.Background(), &session))
	return &session
}

func TestMusicJamService_ListSessions_StatusFilter(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	seedSession(t, svc, domain.JamSession{
		Title: "Past Blues Night", Location: "Cellar Bar",
		Date: dateOffset(-1), StartTime: "19:00", EndTime: "22:00",
		SkillLevel: domain.SkillIntermediate, Genres: []string{"Blues"},
	})
	seedSession(t, svc, domain.JamSession{
		Title: "All Day Open Jam", Location: "Main Hall",
		Date: dateOffset(0), StartTime: "00:00",
		SkillLevel: domain.SkillAllLevels, Genres: []string{"Rock"},
	})
	seedSession(t, svc, domain.JamSession{
		Title: "Tomorrow Jazz Meetup", Location: "Blue Note",
		Date: dateOffset(1), StartTime: "20:00", EndTime: "23:00",
		SkillLevel: domain.SkillAdvanced, Genres: []string{"Jazz"},
	})

	t.Run("filters by derived status", func(t *testing.T) {
		upcoming, err := svc.ListSessions(ctx, service.SessionFilter{Status: "upcoming"})
		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Equal(t, "Tomorrow Jazz Meetup", upcoming[0].Title)

		completed, err := svc.ListSessions(ctx, service.SessionFilter{Status: "completed"})
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, "Past Blues Night", completed[0].Title)

		ongoing, err := svc.ListSessions(ctx, service.SessionFilter{Status: "ongoing"})
		require.NoError(t, err)
		require.Len(t, ongoing, 1)
		assert.Equal(t, "All Day Open Jam", ongoing[0].Title)
	})

	t.Run("the All selector disables the filter", func(t *testing.T) {
		all, err := svc.ListSessions(ctx, service.SessionFilter{Status: "All"})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestMusicJamService_ListSessions_GenreFilter(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	seedSession(t, svc, domain.JamSession{
		Title: "Blues and Rock Night", Location: "Cellar Bar",
		Date: dateOffset(1), StartTime: "19:00",
		SkillLevel: domain.SkillIntermediate, Genres: []string{"Blues", "Rock"},
	})
	seedSession(t, svc, domain.JamSession{
		Title: "Pure Jazz", Location: "Blue Note",
		Date: dateOffset(1), StartTime: "20:00",
		SkillLevel: domain.SkillAdvanced, Genres: []string{"Jazz"},
	})
	seedSession(t, svc, domain.JamSession{
		Title: "Anything Goes", Location: "Garage",
		Date: dateOffset(1), StartTime: "21:00",
		SkillLevel: domain.SkillAllLevels,
	})

	t.Run("returns only sessions whose genres intersect the filter", func(t *testing.T) {
		rock, err := svc.ListSessions(ctx, service.SessionFilter{Genre: "Rock"})
		require.NoError(t, err)
		require.Len(t, rock, 1)
		for _, s := range rock {
			assert.Contains(t, s.Genres, "Rock")
		}
	})

	t.Run("the All Genres selector disables the filter", func(t *testing.T) {
		all, err := svc.ListSessions(ctx, service.SessionFilter{Genre: "All Genres"})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("an unmatched genre returns an empty list", func(t *testing.T) {
		none, err := svc.ListSessions(ctx, service.SessionFilter{Genre: "Gospel"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestMusicJamService_ListSessions_Sorting(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	seedSession(t, svc, domain.JamSession{
		Title: "Later but Crowded", Location: "Main Hall",
		Date: dateOffset(3), StartTime: "20:00",
		SkillLevel: domain.SkillAllLevels,
		Genres:     []string{"Rock"},
		Participants: []string{
			"ayesha", "marco", "lena",
		},
	})
	seedSession(t, svc, domain.JamSession{
		Title: "Sooner but Quiet", Location: "Garage",
		Date: dateOffset(1), StartTime: "18:00",
		SkillLevel: domain.SkillBeginner,
		Genres:     []string{"Folk"},
	})

	t.Run("date sort puts the earliest session first", func(t *testing.T) {
		byDate, err := svc.ListSessions(ctx, service.SessionFilter{SortBy: "date"})
		require.NoError(t, err)
		require.Len(t, byDate, 2)
		assert.Equal(t, "Sooner but Quiet", byDate[0].Title)
	})

	t.Run("popularity sort puts the most attended session first", func(t *testing.T) {
		byPopularity, err := svc.ListSessions(ctx, service.SessionFilter{SortBy: "popularity"})
		require.NoError(t, err)
		require.Len(t, byPopularity, 2)
		assert.Equal(t, "Later but Crowded", byPopularity[0].Title)
	})
}

func TestMusicJamService_CreateSession_RejectsUnknownGenre(t *testing.T) {
	svc := setupService(t)

	err := svc.CreateSession(context.Background(), &domain.JamSession{
		Title: "Bad Genre Night", Location: "Nowhere",
		Date: dateOffset(1), StartTime: "19:00",
		SkillLevel: domain.SkillBeginner,
		Genres:     []string{"Rock", "Vaporwave"},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)
}

func TestMusicJamService_SessionRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created := seedSession(t, svc, domain.JamSession{
		Title:           "Round Trip Jam",
		Description:     "checking persistence",
		Location:        "Studio 5",
		MaxParticipants: 8,
		Date:            dateOffset(1),
		StartTime:       "19:00",
		EndTime:         "22:00",
		SkillLevel:      domain.SkillIntermediate,
		Genres:          []string{"Blues", "Rock"},
	})

	got, err := svc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Location, got.Location)
	assert.Equal(t, created.MaxParticipants, got.MaxParticipants)
	assert.Equal(t, created.Date, got.Date)
	assert.Equal(t, created.StartTime, got.StartTime)
	assert.Equal(t, created.EndTime, got.EndTime)
	assert.Equal(t, created.SkillLevel, got.SkillLevel)
	assert.Equal(t, created.Genres, got.Genres)
	assert.Equal(t, domain.StatusUpcoming, got.Status)
}

func TestMusicJamService_Playlists(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("round-trips a playlist with its tabs", func(t *testing.T) {
		playlist := &domain.Playlist{
			Title:       "Campfire Classics",
			Description: "easy strummers",
			Tabs: []domain.Tab{
				{Title: "Wonderwall", Artist: "Oasis", TabURL: "https://tabs.example.com/wonderwall"},
				{Title: "Wish You Were Here", Artist: "Pink Floyd"},
			},
			Genres: []string{"Rock", "Classic Rock"},
		}
		require.NoError(t, svc.CreatePlaylist(ctx, playlist))
		require.NotEmpty(t, playlist.ID)

		got, err := svc.GetPlaylist(ctx, playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, playlist.Title, got.Title)
		assert.Equal(t, playlist.Tabs, got.Tabs)
		assert.Equal(t, playlist.Genres, got.Genres)
	})

	t.Run("replaces a playlist in full", func(t *testing.T) {
		playlist := &domain.Playlist{Title: "Before", Tabs: []domain.Tab{{Title: "Song A"}}}
		require.NoError(t, svc.CreatePlaylist(ctx, playlist))

		replacement := &domain.Playlist{
			ID:    playlist.ID,
			Title: "After",
			Tabs:  []domain.Tab{{Title: "Song B", Artist: "Someone Else"}},
		}
		require.NoError(t, svc.UpdatePlaylist(ctx, replacement))

		got, err := svc.GetPlaylist(ctx, playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", got.Title)
		require.Len(t, got.Tabs, 1)
		assert.Equal(t, "Song B", got.Tabs[0].Title)
	})

	t.Run("updating an unknown playlist fails", func(t *testing.T) {
		err := svc.UpdatePlaylist(ctx, &domain.Playlist{ID: "missing", Title: "Ghost"})
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})
}
