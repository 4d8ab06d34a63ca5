package repository

import (
	"context"
	"testing"

	"Terrace/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeedHidesFilteredPostsFromOthers(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedProfile(t, db, 1)
	seedProfile(t, db, 2)

	teamID := uint64(7)
	visible := &model.Post{ID: 10, AuthorID: 1, Scope: model.PostScopeTeamRoom, TeamID: &teamID, Body: "top corner"}
	hidden := &model.Post{ID: 11, AuthorID: 1, Scope: model.PostScopeTeamRoom, TeamID: &teamID, Body: "filtered", IsHidden: true, HiddenReason: model.HiddenReasonAutoFilter}
	otherTeam := uint64(8)
	elsewhere := &model.Post{ID: 12, AuthorID: 1, Scope: model.PostScopeTeamRoom, TeamID: &otherTeam, Body: "different room"}
	require.NoError(t, db.Create([]*model.Post{visible, hidden, elsewhere}).Error)

	// 旁观者只能看到未隐藏的
	posts, err := repo.GetFeed(ctx, model.PostScopeTeamRoom, teamID, 2)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(10), posts[0].ID)

	// 作者能看到自己被隐藏的帖子
	posts, err = repo.GetFeed(ctx, model.PostScopeTeamRoom, teamID, 1)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestGetFeedMatchThread(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedProfile(t, db, 1)

	matchID := uint64(3)
	post := &model.Post{ID: 10, AuthorID: 1, Scope: model.PostScopeMatchThread, MatchID: &matchID, Body: "kickoff"}
	require.NoError(t, db.Create(post).Error)

	posts, err := repo.GetFeed(ctx, model.PostScopeMatchThread, matchID, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(10), posts[0].ID)
}

func TestGetHiddenPosts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedProfile(t, db, 1)
	teamID := uint64(7)
	require.NoError(t, db.Create([]*model.Post{
		{ID: 10, AuthorID: 1, Scope: model.PostScopeTeamRoom, TeamID: &teamID, Body: "ok"},
		{ID: 11, AuthorID: 1, Scope: model.PostScopeTeamRoom, TeamID: &teamID, Body: "bad", IsHidden: true, HiddenReason: model.HiddenReasonAutoFilter},
	}).Error)

	posts, err := repo.GetHiddenPosts(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(11), posts[0].ID)
}

func TestReconcileReportCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedProfile(t, db, 1)
	seedPost(t, db, 10, 1)

	// 人为制造漂移
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", 10).
		UpdateColumn("report_count", 99).Error)
	require.NoError(t, db.Create(&model.Report{ReporterID: 2, PostID: 10, Reason: "abuse"}).Error)

	require.NoError(t, repo.ReconcileReportCounts(ctx))

	var post model.Post
	require.NoError(t, db.Take(&post, 10).Error)
	assert.Equal(t, 1, post.ReportCount)
}
