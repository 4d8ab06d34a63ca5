package moderation

import (
	"strings"
	"testing"

	"Terrace/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestShouldAutoHide(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		mediaRef string
		want     bool
	}{
		{"干净内容", "great performance from the away end", "", false},
		{"命中关键词", "that chant was racist and everyone knows it", "", true},
		{"大小写不敏感", "stop the VIOLENCE in the stands", "", true},
		{"多词关键词", "keep political propaganda out of football", "", true},
		{"关键词在词中间", "this is a threatening look", "", true},
		{"媒体链接命中", "normal caption", "https://cdn.example.com/gore-clip.mp4", true},
		{"媒体链接大小写", "normal caption", "https://cdn.example.com/NSFW/1.png", true},
		{"媒体链接干净", "normal caption", "https://cdn.example.com/goal.mp4", false},
		{"全空", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldAutoHide(tt.text, tt.mediaRef))
		})
	}
}

func TestApplyStrike(t *testing.T) {
	assert.Equal(t, model.ModerationStateMuted, ApplyStrike(0))
	assert.Equal(t, model.ModerationStateSuspended, ApplyStrike(1))
	assert.Equal(t, model.ModerationStateBanned, ApplyStrike(2))
	assert.Equal(t, model.ModerationStateBanned, ApplyStrike(7))
}

func TestIsPostingBlocked(t *testing.T) {
	assert.False(t, IsPostingBlocked(model.ModerationStateNone))
	assert.False(t, IsPostingBlocked(model.ModerationStateMuted))
	assert.True(t, IsPostingBlocked(model.ModerationStateSuspended))
	assert.True(t, IsPostingBlocked(model.ModerationStateBanned))
}

func TestValidateMediaURL(t *testing.T) {
	hosts := []string{"cdn.terrace.example.com"}

	t.Run("空串直接通过", func(t *testing.T) {
		got, err := ValidateMediaURL("", true, hosts)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("合法链接", func(t *testing.T) {
		got, err := ValidateMediaURL("https://cdn.terrace.example.com/clip.mp4", true, hosts)
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.terrace.example.com/clip.mp4", got)
	})

	t.Run("超长拒绝", func(t *testing.T) {
		long := "https://cdn.terrace.example.com/" + strings.Repeat("a", MaxMediaURLLength)
		_, err := ValidateMediaURL(long, true, hosts)
		assert.ErrorIs(t, err, ErrMediaURLTooLong)
	})

	t.Run("缺少域名", func(t *testing.T) {
		_, err := ValidateMediaURL("not-a-url", true, hosts)
		assert.ErrorIs(t, err, ErrMediaURLMalformed)
	})

	t.Run("http 被强制协议拒绝", func(t *testing.T) {
		_, err := ValidateMediaURL("http://cdn.terrace.example.com/clip.mp4", true, hosts)
		assert.ErrorIs(t, err, ErrMediaURLScheme)
	})

	t.Run("不强制时允许 http", func(t *testing.T) {
		_, err := ValidateMediaURL("http://cdn.terrace.example.com/clip.mp4", false, hosts)
		assert.NoError(t, err)
	})

	t.Run("白名单外域名拒绝", func(t *testing.T) {
		_, err := ValidateMediaURL("https://evil.example.com/clip.mp4", true, hosts)
		assert.ErrorIs(t, err, ErrMediaHostNotAllowed)
	})

	t.Run("空白名单放开域名限制", func(t *testing.T) {
		_, err := ValidateMediaURL("https://anywhere.example.com/clip.mp4", true, nil)
		assert.NoError(t, err)
	})
}
