package service

import (
	"context"
	"testing"

	"Terrace/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActionServiceFixture() (PostActionService, *fakeActionRepo, *fakePostRepo, *fakeProfileRepo) {
	actionRepo := newFakeActionRepo()
	postRepo := newFakePostRepo()
	profileRepo := newFakeProfileRepo()

	profileRepo.profiles[1] = &model.Profile{ID: 1, Username: "author"}
	profileRepo.profiles[2] = &model.Profile{ID: 2, Username: "voter"}

	teamID := uint64(7)
	postRepo.posts[10] = &model.Post{ID: 10, AuthorID: 1, Scope: model.PostScopeTeamRoom, TeamID: &teamID, Body: "worldie"}

	svc := NewPostActionService(actionRepo, postRepo, profileRepo)
	return svc, actionRepo, postRepo, profileRepo
}

func TestVotePostAwardsAuthor(t *testing.T) {
	svc, _, _, profileRepo := newActionServiceFixture()

	result, err := svc.VotePost(context.Background(), 2, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Upvotes)
	assert.Equal(t, int64(1), result.Score)

	assert.Contains(t, profileRepo.events, model.ReputationEventPostUpvoted)
	assert.Equal(t, 2, profileRepo.points[1])
}

func TestVotePostChangeNoDoubleAward(t *testing.T) {
	svc, _, _, profileRepo := newActionServiceFixture()

	_, err := svc.VotePost(context.Background(), 2, 10, 1)
	require.NoError(t, err)

	// 改票不再加分
	_, err = svc.VotePost(context.Background(), 2, 10, -1)
	require.NoError(t, err)
	_, err = svc.VotePost(context.Background(), 2, 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, profileRepo.points[1])
}

func TestVotePostSelfNoAward(t *testing.T) {
	svc, _, _, profileRepo := newActionServiceFixture()

	_, err := svc.VotePost(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	assert.Zero(t, profileRepo.points[1])
}

func TestVotePostInvalidValue(t *testing.T) {
	svc, _, _, _ := newActionServiceFixture()

	_, err := svc.VotePost(context.Background(), 2, 10, 0)
	assert.ErrorIs(t, err, ErrParamInvalid)
	_, err = svc.VotePost(context.Background(), 2, 10, 5)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestVotePostRestrictedVoter(t *testing.T) {
	svc, _, _, profileRepo := newActionServiceFixture()
	profileRepo.profiles[2].ModerationState = model.ModerationStateBanned

	_, err := svc.VotePost(context.Background(), 2, 10, 1)
	assert.ErrorIs(t, err, ErrAccountRestricted)
}

func TestVotePostHiddenPost(t *testing.T) {
	svc, _, postRepo, _ := newActionServiceFixture()
	postRepo.posts[10].IsHidden = true

	_, err := svc.VotePost(context.Background(), 2, 10, 1)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAddReactionIdempotent(t *testing.T) {
	svc, actionRepo, _, profileRepo := newActionServiceFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddReaction(ctx, 2, 10, model.ReactionFire))
	// 重复表态不报错
	require.NoError(t, svc.AddReaction(ctx, 2, 10, model.ReactionFire))

	counts, err := actionRepo.GetReactionCounts(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[model.ReactionFire])

	// 声望只给一次
	assert.Equal(t, 1, profileRepo.points[1])
}

func TestAddReactionInvalidKind(t *testing.T) {
	svc, _, _, _ := newActionServiceFixture()

	err := svc.AddReaction(context.Background(), 2, 10, "thumbsup")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestRemoveReaction(t *testing.T) {
	svc, actionRepo, _, _ := newActionServiceFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddReaction(ctx, 2, 10, model.ReactionBottle))
	require.NoError(t, svc.RemoveReaction(ctx, 2, 10, model.ReactionBottle))

	exists, err := actionRepo.CheckReactionExists(ctx, 10, 2, model.ReactionBottle)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetReactionCountsFallsBackToRepo(t *testing.T) {
	svc, _, _, _ := newActionServiceFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddReaction(ctx, 2, 10, model.ReactionSalty))

	counts, err := svc.GetReactionCounts(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[model.ReactionSalty])
}
