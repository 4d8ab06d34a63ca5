package service

import (
	"context"
	"testing"
	"time"

	"Terrace/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamService() (TeamService, *fakeTeamRepo, *fakeProfileRepo) {
	teamRepo := newFakeTeamRepo()
	profileRepo := newFakeProfileRepo()

	teamRepo.teams[1] = &model.Team{ID: 1, Name: "Arsenal", ShortCode: "ARS"}
	teamRepo.teams[2] = &model.Team{ID: 2, Name: "Spurs", ShortCode: "TOT"}
	teamRepo.matches[5] = &model.Match{ID: 5, HomeTeamID: 1, AwayTeamID: 2, KickoffAt: time.Now(), Status: model.MatchStatusScheduled}
	teamRepo.matches[6] = &model.Match{ID: 6, HomeTeamID: 2, AwayTeamID: 1, KickoffAt: time.Now(), Status: model.MatchStatusFinished}

	profileRepo.profiles[1] = &model.Profile{ID: 1, Username: "gunner", ReputationTotal: 40}
	profileRepo.profiles[2] = &model.Profile{ID: 2, Username: "lily", ReputationTotal: 120}

	return NewTeamService(teamRepo, profileRepo), teamRepo, profileRepo
}

func TestGetTeams(t *testing.T) {
	svc, _, _ := newTeamService()

	teams, err := svc.GetTeams(context.Background())
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

func TestGetMatchesFiltered(t *testing.T) {
	svc, _, _ := newTeamService()
	ctx := context.Background()

	matches, err := svc.GetMatches(ctx, "")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = svc.GetMatches(ctx, model.MatchStatusScheduled)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, uint64(5), matches[0].ID)
}

func TestSetPrimaryTeam(t *testing.T) {
	svc, _, profileRepo := newTeamService()
	ctx := context.Background()

	require.NoError(t, svc.SetPrimaryTeam(ctx, 1, 2))
	require.NotNil(t, profileRepo.profiles[1].PrimaryTeamID)
	assert.Equal(t, uint64(2), *profileRepo.profiles[1].PrimaryTeamID)
}

func TestSetPrimaryTeamUnknownTeam(t *testing.T) {
	svc, _, _ := newTeamService()

	err := svc.SetPrimaryTeam(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestOverridePrimaryTeamUnknownProfile(t *testing.T) {
	svc, _, _ := newTeamService()

	err := svc.OverridePrimaryTeam(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetLeaderboard(t *testing.T) {
	svc, _, _ := newTeamService()

	entries, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
	}
}
