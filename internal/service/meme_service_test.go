package service

import (
	"context"
	"strings"
	"testing"

	"Terrace/internal/api/dto"
	"Terrace/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemeService() MemeService {
	repo := &fakeMemeRepo{
		templates: []*model.MemeTemplate{
			{
				ID:        1,
				Name:      "Drake",
				Slug:      "drake",
				ImageURL:  "https://cdn.terrace.example.com/memes/drake.png",
				TextSlots: `["Top text","Bottom text"]`,
			},
			{
				ID:        2,
				Name:      "Broken",
				Slug:      "broken",
				ImageURL:  "https://cdn.terrace.example.com/memes/broken.png",
				TextSlots: `not-json`,
			},
		},
	}
	return NewMemeService(repo)
}

func TestGetTemplatesParsesSlots(t *testing.T) {
	svc := newMemeService()

	templates, err := svc.GetTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, []string{"Top text", "Bottom text"}, templates[0].TextSlots)
	// 槽位配置损坏时退化为空数组而不是报错
	assert.Empty(t, templates[1].TextSlots)
}

func TestExportMeme(t *testing.T) {
	svc := newMemeService()

	result, err := svc.ExportMeme(context.Background(), 1, &dto.MemeExportDTO{
		TemplateSlug: "drake",
		Captions:     []string{"when the ref plays on", "when VAR steps in"},
	})
	require.NoError(t, err)
	assert.Equal(t, "drake", result.TemplateSlug)
	assert.Len(t, result.Captions, 2)
	assert.NotEmpty(t, result.ExportToken)
}

func TestExportMemeUnknownTemplate(t *testing.T) {
	svc := newMemeService()

	_, err := svc.ExportMeme(context.Background(), 1, &dto.MemeExportDTO{
		TemplateSlug: "nope",
		Captions:     []string{"x"},
	})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestExportMemeCaptionOverflow(t *testing.T) {
	svc := newMemeService()

	_, err := svc.ExportMeme(context.Background(), 1, &dto.MemeExportDTO{
		TemplateSlug: "drake",
		Captions:     []string{"a", "b", "c"},
	})
	assert.ErrorIs(t, err, ErrCaptionOverflow)
}

func TestExportMemeCaptionTooLong(t *testing.T) {
	svc := newMemeService()

	_, err := svc.ExportMeme(context.Background(), 1, &dto.MemeExportDTO{
		TemplateSlug: "drake",
		Captions:     []string{strings.Repeat("哈", 101)},
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}
