package service

import (
	"context"
	"sort"
	"time"

	"Terrace/internal/api/dto"
	"Terrace/internal/model"
	"Terrace/internal/pkg/es"
	"Terrace/internal/pkg/kafka"
	"Terrace/internal/pkg/mongo"
	"Terrace/internal/repository"
)

type fakeProfileRepo struct {
	profiles map[uint64]*model.Profile
	events   []string
	points   map[uint64]int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[uint64]*model.Profile),
		points:   make(map[uint64]int),
	}
}

func (f *fakeProfileRepo) GetProfile(_ context.Context, profileID uint64) (*model.Profile, error) {
	profile, ok := f.profiles[profileID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) SetPrimaryTeam(_ context.Context, profileID, teamID uint64) error {
	profile, ok := f.profiles[profileID]
	if !ok {
		return repository.ErrNotFound
	}
	profile.PrimaryTeamID = &teamID
	return nil
}

func (f *fakeProfileRepo) AddReputation(_ context.Context, profileID uint64, eventType string, points int) error {
	if _, ok := f.profiles[profileID]; !ok {
		return repository.ErrNotFound
	}
	f.events = append(f.events, eventType)
	f.points[profileID] += points
	return nil
}

func (f *fakeProfileRepo) GetLeaderboard(_ context.Context, limit int) ([]*model.Profile, error) {
	result := make([]*model.Profile, 0, len(f.profiles))
	for _, profile := range f.profiles {
		result = append(result, profile)
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakePostRepo struct {
	posts  map[uint64]*model.Post
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*model.Post), nextID: 1}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	f.nextID++
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return post, nil
}

func (f *fakePostRepo) GetPostByIds(_ context.Context, ids []uint64) ([]*model.Post, error) {
	var result []*model.Post
	for _, id := range ids {
		if post, ok := f.posts[id]; ok {
			result = append(result, post)
		}
	}
	return result, nil
}

func (f *fakePostRepo) GetFeed(_ context.Context, scope string, targetID, viewerID uint64) ([]*model.Post, error) {
	var result []*model.Post
	for _, post := range f.posts {
		if post.Scope != scope {
			continue
		}
		if scope == model.PostScopeTeamRoom && (post.TeamID == nil || *post.TeamID != targetID) {
			continue
		}
		if scope == model.PostScopeMatchThread && (post.MatchID == nil || *post.MatchID != targetID) {
			continue
		}
		if post.IsHidden && post.AuthorID != viewerID {
			continue
		}
		result = append(result, post)
	}
	return result, nil
}

func (f *fakePostRepo) GetHiddenPosts(_ context.Context, _, _ int) ([]*model.Post, error) {
	var result []*model.Post
	for _, post := range f.posts {
		if post.IsHidden {
			result = append(result, post)
		}
	}
	return result, nil
}

func (f *fakePostRepo) ReconcileReportCounts(_ context.Context) error {
	return nil
}

type fakeTeamRepo struct {
	teams   map[uint64]*model.Team
	matches map[uint64]*model.Match
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:   make(map[uint64]*model.Team),
		matches: make(map[uint64]*model.Match),
	}
}

func (f *fakeTeamRepo) GetTeam(_ context.Context, teamID uint64) (*model.Team, error) {
	team, ok := f.teams[teamID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) GetAllTeams(_ context.Context) ([]*model.Team, error) {
	result := make([]*model.Team, 0, len(f.teams))
	for _, team := range f.teams {
		result = append(result, team)
	}
	return result, nil
}

func (f *fakeTeamRepo) GetMatch(_ context.Context, matchID uint64) (*model.Match, error) {
	match, ok := f.matches[matchID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return match, nil
}

func (f *fakeTeamRepo) GetMatches(_ context.Context, status string, _ int) ([]*model.Match, error) {
	var result []*model.Match
	for _, match := range f.matches {
		if status == "" || match.Status == status {
			result = append(result, match)
		}
	}
	return result, nil
}

type fakeESRepo struct {
	indexed map[uint64]*es.PostES
	hidden  map[uint64]bool
}

func newFakeESRepo() *fakeESRepo {
	return &fakeESRepo{
		indexed: make(map[uint64]*es.PostES),
		hidden:  make(map[uint64]bool),
	}
}

func (f *fakeESRepo) SearchPosts(_ context.Context, _ string, _, _ int) ([]*es.PostES, error) {
	var result []*es.PostES
	for id, doc := range f.indexed {
		if !f.hidden[id] {
			result = append(result, doc)
		}
	}
	return result, nil
}

func (f *fakeESRepo) IndexPost(_ context.Context, post *es.PostES) error {
	f.indexed[post.ID] = post
	return nil
}

func (f *fakeESRepo) HidePost(_ context.Context, id uint64) error {
	f.hidden[id] = true
	return nil
}

func (f *fakeESRepo) DeletePost(_ context.Context, id uint64) error {
	delete(f.indexed, id)
	return nil
}

type fakeActionSvc struct {
	counts map[uint64]map[string]int64
}

func (f *fakeActionSvc) VotePost(context.Context, uint64, uint64, int) (*dto.VoteResultDTO, error) {
	return &dto.VoteResultDTO{}, nil
}

func (f *fakeActionSvc) AddReaction(context.Context, uint64, uint64, string) error {
	return nil
}

func (f *fakeActionSvc) RemoveReaction(context.Context, uint64, uint64, string) error {
	return nil
}

func (f *fakeActionSvc) GetReactionCounts(_ context.Context, postID uint64) (map[string]int64, error) {
	if f.counts == nil {
		return map[string]int64{}, nil
	}
	return f.counts[postID], nil
}

type fakeNoticeRepo struct {
	notices []*mongo.NoticeModel
}

func (f *fakeNoticeRepo) CreateNotice(_ context.Context, msg *mongo.NoticeModel) error {
	f.notices = append(f.notices, msg)
	return nil
}

func (f *fakeNoticeRepo) GetNoticeList(_ context.Context, userID uint64, _, _ int64) ([]*mongo.NoticeModel, error) {
	var result []*mongo.NoticeModel
	for _, msg := range f.notices {
		if msg.ReceiverID == userID {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (f *fakeNoticeRepo) MarkAsRead(_ context.Context, userID uint64, _ string) error {
	for _, msg := range f.notices {
		if msg.ReceiverID == userID {
			msg.IsRead = true
		}
	}
	return nil
}

func (f *fakeNoticeRepo) MarkAllAsRead(_ context.Context, userID uint64) error {
	return f.MarkAsRead(context.Background(), userID, "")
}

func (f *fakeNoticeRepo) GetUnreadCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, msg := range f.notices {
		if msg.ReceiverID == userID && !msg.IsRead {
			count++
		}
	}
	return count, nil
}

type voteKey struct {
	postID uint64
	userID uint64
}

type reactionKey struct {
	postID uint64
	userID uint64
	kind   string
}

type fakeActionRepo struct {
	votes     map[voteKey]int
	reactions map[reactionKey]bool
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{
		votes:     make(map[voteKey]int),
		reactions: make(map[reactionKey]bool),
	}
}

func (f *fakeActionRepo) ApplyVote(_ context.Context, postID, userID uint64, value int) (*repository.VoteResult, error) {
	key := voteKey{postID, userID}
	_, existed := f.votes[key]
	f.votes[key] = value

	result := &repository.VoteResult{Created: !existed}
	for k, v := range f.votes {
		if k.postID != postID {
			continue
		}
		if v == 1 {
			result.Upvotes++
		} else {
			result.Downvotes++
		}
	}
	return result, nil
}

func (f *fakeActionRepo) CreateReaction(_ context.Context, reaction *model.PostReaction) error {
	key := reactionKey{reaction.PostID, reaction.UserID, reaction.Reaction}
	if f.reactions[key] {
		return repository.ErrAlreadyExists
	}
	f.reactions[key] = true
	return nil
}

func (f *fakeActionRepo) DeleteReaction(_ context.Context, postID, userID uint64, kind string) error {
	delete(f.reactions, reactionKey{postID, userID, kind})
	return nil
}

func (f *fakeActionRepo) CheckReactionExists(_ context.Context, postID, userID uint64, kind string) (bool, error) {
	return f.reactions[reactionKey{postID, userID, kind}], nil
}

func (f *fakeActionRepo) GetReactionCounts(_ context.Context, postID uint64) (map[string]int64, error) {
	counts := make(map[string]int64)
	for key := range f.reactions {
		if key.postID == postID {
			counts[key.kind]++
		}
	}
	return counts, nil
}

type fakeMemeRepo struct {
	templates []*model.MemeTemplate
}

func (f *fakeMemeRepo) GetTemplates(_ context.Context) ([]*model.MemeTemplate, error) {
	return f.templates, nil
}

func (f *fakeMemeRepo) GetTemplateBySlug(_ context.Context, slug string) (*model.MemeTemplate, error) {
	for _, template := range f.templates {
		if template.Slug == slug {
			return template, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeReportRepo struct {
	reports map[uint64]*model.Report
	nextID  uint64
	outcome *repository.ReviewOutcome
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uint64]*model.Report), nextID: 1}
}

func (f *fakeReportRepo) CreateReport(_ context.Context, report *model.Report) error {
	for _, existing := range f.reports {
		if existing.ReporterID == report.ReporterID && existing.PostID == report.PostID {
			return repository.ErrAlreadyExists
		}
	}
	report.ID = f.nextID
	report.CreatedAt = time.Now()
	f.nextID++
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) GetReport(_ context.Context, reportID uint64) (*model.Report, error) {
	report, ok := f.reports[reportID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return report, nil
}

func (f *fakeReportRepo) GetReportQueue(_ context.Context, statuses []string, limit int) ([]*model.Report, error) {
	var result []*model.Report
	for _, report := range f.reports {
		for _, status := range statuses {
			if report.Status == status {
				result = append(result, report)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeReportRepo) ClaimReport(_ context.Context, reportID, reviewerID uint64) error {
	report, ok := f.reports[reportID]
	if !ok {
		return repository.ErrNotFound
	}
	if report.Status != model.ReportStatusOpen {
		return repository.ErrNotReviewable
	}
	now := time.Now()
	report.Status = model.ReportStatusReviewing
	report.ReviewerID = &reviewerID
	report.ClaimedAt = &now
	return nil
}

func (f *fakeReportRepo) ReviewReport(_ context.Context, reportID, _ uint64, decision, _ string) (*repository.ReviewOutcome, error) {
	report, ok := f.reports[reportID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if report.Status != model.ReportStatusOpen && report.Status != model.ReportStatusReviewing {
		return nil, repository.ErrNotReviewable
	}
	if decision == model.ReviewDecisionConfirmed {
		report.Status = model.ReportStatusResolved
	} else {
		report.Status = model.ReportStatusDismissed
	}
	if f.outcome != nil {
		f.outcome.ReportID = reportID
		f.outcome.PostID = report.PostID
		f.outcome.ReporterID = report.ReporterID
		f.outcome.Decision = decision
		return f.outcome, nil
	}
	return &repository.ReviewOutcome{
		ReportID:    reportID,
		PostID:      report.PostID,
		ReporterID:  report.ReporterID,
		Decision:    decision,
		ActionTaken: model.ModerationActionNone,
	}, nil
}

func (f *fakeReportRepo) RequeueStaleReviews(_ context.Context, olderThan time.Time) (int64, error) {
	var count int64
	for _, report := range f.reports {
		if report.Status == model.ReportStatusReviewing && report.ClaimedAt != nil && report.ClaimedAt.Before(olderThan) {
			report.Status = model.ReportStatusOpen
			report.ReviewerID = nil
			report.ClaimedAt = nil
			count++
		}
	}
	return count, nil
}

type fakeProducer struct {
	events []*kafka.ModerationEvent
}

func (f *fakeProducer) PublishModerationEvent(_ context.Context, event *kafka.ModerationEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeProducer) Close() error {
	return nil
}
