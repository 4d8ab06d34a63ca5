package feed

import (
	"testing"
	"time"

	"Terrace/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	posts := []*model.Post{
		{ID: 1, Score: 3, CreatedAt: base},
		{ID: 2, Score: 10, CreatedAt: base.Add(-time.Hour)},
		{ID: 3, Score: 3, CreatedAt: base.Add(time.Minute)},
		{ID: 4, Score: -2, CreatedAt: base.Add(2 * time.Hour)},
	}

	ranked := Rank(posts)

	ids := make([]uint64, len(ranked))
	for i, p := range ranked {
		ids[i] = p.ID
	}
	// 分数降序，平分时新帖在前
	assert.Equal(t, []uint64{2, 3, 1, 4}, ids)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	posts := []*model.Post{
		{ID: 1, Score: 1},
		{ID: 2, Score: 5},
	}

	_ = Rank(posts)

	assert.Equal(t, uint64(1), posts[0].ID)
	assert.Equal(t, uint64(2), posts[1].ID)
}

func TestRankDeterministic(t *testing.T) {
	now := time.Now()
	posts := []*model.Post{
		{ID: 1, Score: 2, CreatedAt: now},
		{ID: 2, Score: 2, CreatedAt: now},
		{ID: 3, Score: 2, CreatedAt: now},
	}

	first := Rank(posts)
	second := Rank(posts)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
