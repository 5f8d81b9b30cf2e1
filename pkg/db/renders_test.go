package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOperations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create assigns guid and id", func(t *testing.T) {
		render := &Render{Category: "sofa", Style: "modern", Prompt: "render a modern sofa"}
		err := db.CreateRender(ctx, render)
		require.NoError(t, err)
		assert.NotEmpty(t, render.GUID)
		assert.Positive(t, render.ID)
		assert.False(t, render.CreatedAt.IsZero())
	})

	t.Run("get by guid", func(t *testing.T) {
		render := &Render{Category: "table", Style: "rustic", Prompt: "render a rustic table"}
		require.NoError(t, db.CreateRender(ctx, render))

		got, err := db.GetRender(ctx, render.GUID)
		require.NoError(t, err)
		assert.Equal(t, "table", got.Category)
		assert.Equal(t, "rustic", got.Style)
		assert.Equal(t, "render a rustic table", got.Prompt)
		assert.False(t, got.Rating.Valid, "rating unset until feedback")
		assert.Nil(t, got.Tags)
	})

	t.Run("get unknown guid", func(t *testing.T) {
		_, err := db.GetRender(ctx, "no-such-guid")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update feedback", func(t *testing.T) {
		render := &Render{Category: "lamp", Style: "industrial", Prompt: "render an industrial lamp"}
		require.NoError(t, db.CreateRender(ctx, render))

		err := db.UpdateFeedback(ctx, render.GUID, 4, []string{"too dark", "good shape"})
		require.NoError(t, err)

		got, err := db.GetRender(ctx, render.GUID)
		require.NoError(t, err)
		require.True(t, got.Rating.Valid)
		assert.Equal(t, int64(4), got.Rating.Int64)
		assert.Equal(t, Tags{"too dark", "good shape"}, got.Tags)
	})

	t.Run("update feedback unknown guid", func(t *testing.T) {
		err := db.UpdateFeedback(ctx, "no-such-guid", 3, []string{"meh"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("preset guid is kept", func(t *testing.T) {
		render := &Render{GUID: "fixed-guid", Category: "rug", Style: "bohemian", Prompt: "p"}
		require.NoError(t, db.CreateRender(ctx, render))
		assert.Equal(t, "fixed-guid", render.GUID)
	})
}

func TestTopRatedPrompts(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// seed records with various ratings, spaced creation times for ordering
	base := time.Now().Add(-1 * time.Hour)
	seed := []struct {
		category string
		style    string
		prompt   string
		rating   int
	}{
		{"sofa", "modern", "five star a", 5},
		{"sofa", "modern", "five star b", 5},
		{"sofa", "modern", "five star c", 5},
		{"sofa", "modern", "five star d", 5},
		{"sofa", "modern", "four star", 4},
		{"sofa", "rustic", "wrong style", 5},
		{"table", "modern", "wrong category", 5},
	}
	for i, s := range seed {
		render := &Render{Category: s.category, Style: s.style, Prompt: s.prompt,
			CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.CreateRender(ctx, render))
		require.NoError(t, db.UpdateFeedback(ctx, render.GUID, s.rating, nil))
	}

	prompts, err := db.TopRatedPrompts(ctx, "sofa", "modern", 3)
	require.NoError(t, err)
	require.Len(t, prompts, 3, "limited to requested count")
	// newest first
	assert.Equal(t, []string{"five star d", "five star c", "five star b"}, prompts)

	t.Run("no matches yields empty", func(t *testing.T) {
		prompts, err := db.TopRatedPrompts(ctx, "wardrobe", "baroque", 3)
		require.NoError(t, err)
		assert.Empty(t, prompts)
	})
}

func TestLowRatedRenders(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	base := time.Now().Add(-1 * time.Hour)
	mk := func(i int, category, style string) *Render {
		render := &Render{Category: category, Style: style, Prompt: fmt.Sprintf("p%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.CreateRender(ctx, render))
		return render
	}

	r1 := mk(1, "sofa", "modern")
	require.NoError(t, db.UpdateFeedback(ctx, r1.GUID, 1, []string{"warped", "blurry"}))

	r2 := mk(2, "sofa", "rustic") // different style still counts
	require.NoError(t, db.UpdateFeedback(ctx, r2.GUID, 2, []string{"flat colors"}))

	r3 := mk(3, "sofa", "modern") // rating 3 is not "low"
	require.NoError(t, db.UpdateFeedback(ctx, r3.GUID, 3, []string{"ok"}))

	mk(4, "sofa", "modern") // unrated, excluded

	r5 := mk(5, "table", "modern") // other category, excluded
	require.NoError(t, db.UpdateFeedback(ctx, r5.GUID, 1, []string{"bad"}))

	renders, err := db.LowRatedRenders(ctx, "sofa", 10)
	require.NoError(t, err)
	require.Len(t, renders, 2)
	// newest first, style ignored
	assert.Equal(t, Tags{"flat colors"}, renders[0].Tags)
	assert.Equal(t, Tags{"warped", "blurry"}, renders[1].Tags)

	t.Run("no matches yields empty", func(t *testing.T) {
		renders, err := db.LowRatedRenders(ctx, "mirror", 10)
		require.NoError(t, err)
		assert.Empty(t, renders)
	})
}

func TestListRenders(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	base := time.Now().Add(-1 * time.Hour)
	for i, pair := range []struct{ category, style string }{
		{"sofa", "modern"}, {"sofa", "rustic"}, {"table", "modern"},
	} {
		render := &Render{Category: pair.category, Style: pair.style, Prompt: "p",
			CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.CreateRender(ctx, render))
	}

	t.Run("all", func(t *testing.T) {
		renders, err := db.ListRenders(ctx, "", "", 50)
		require.NoError(t, err)
		assert.Len(t, renders, 3)
	})

	t.Run("by category", func(t *testing.T) {
		renders, err := db.ListRenders(ctx, "sofa", "", 50)
		require.NoError(t, err)
		assert.Len(t, renders, 2)
	})

	t.Run("by category and style", func(t *testing.T) {
		renders, err := db.ListRenders(ctx, "sofa", "rustic", 50)
		require.NoError(t, err)
		require.Len(t, renders, 1)
		assert.Equal(t, "rustic", renders[0].Style)
	})

	t.Run("limit applies", func(t *testing.T) {
		renders, err := db.ListRenders(ctx, "", "", 2)
		require.NoError(t, err)
		assert.Len(t, renders, 2)
	})
}

func TestFeedbackStats(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		stats, err := db.FeedbackStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.Total)
		assert.Equal(t, int64(0), stats.Rated)
		assert.Zero(t, stats.Average)
	})

	for _, rating := range []int{5, 5, 1} {
		render := &Render{Category: "sofa", Style: "modern", Prompt: "p"}
		require.NoError(t, db.CreateRender(ctx, render))
		require.NoError(t, db.UpdateFeedback(ctx, render.GUID, rating, nil))
	}
	// one unrated
	require.NoError(t, db.CreateRender(ctx, &Render{Category: "sofa", Style: "modern", Prompt: "p"}))

	stats, err := db.FeedbackStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(3), stats.Rated)
	assert.InEpsilon(t, (5.0+5.0+1.0)/3.0, stats.Average, 0.001)
	assert.Equal(t, int64(2), stats.ByRating["5"])
	assert.Equal(t, int64(1), stats.ByRating["1"])
}

func TestTagsRoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	render := &Render{Category: "sofa", Style: "modern", Prompt: "p"}
	require.NoError(t, db.CreateRender(ctx, render))

	// empty but non-nil tags survive the round trip as an empty array
	require.NoError(t, db.UpdateFeedback(ctx, render.GUID, 3, []string{}))
	got, err := db.GetRender(ctx, render.GUID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}
