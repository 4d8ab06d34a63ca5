package repository

import (
	"fmt"
	"testing"

	"Terrace/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Profile{},
		&model.Post{},
		&model.PostVote{},
		&model.PostReaction{},
		&model.Report{},
		&model.ModerationReview{},
		&model.Team{},
		&model.Match{},
		&model.ReputationLog{},
		&model.MemeTemplate{},
	))
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, id uint64) *model.Profile {
	t.Helper()
	profile := &model.Profile{
		ID:              id,
		Username:        fmt.Sprintf("fan%d", id),
		ModerationState: model.ModerationStateNone,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func seedPost(t *testing.T, db *gorm.DB, id, authorID uint64) *model.Post {
	t.Helper()
	teamID := uint64(1)
	post := &model.Post{
		ID:       id,
		AuthorID: authorID,
		Scope:    model.PostScopeTeamRoom,
		TeamID:   &teamID,
		Body:     "what a finish",
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
