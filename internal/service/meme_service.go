package service

import (
	"Terrace/internal/api/dto"
	"Terrace/internal/model"
	"Terrace/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const maxCaptionLength = 100

type MemeService interface {
	GetTemplates(ctx context.Context) ([]*dto.MemeTemplateDTO, error)
	ExportMeme(ctx context.Context, userID uint64, req *dto.MemeExportDTO) (*dto.MemeExportResultDTO, error)
}

type memeServiceImpl struct {
	memeRepo repository.MemeRepo
}

func NewMemeService(memeRepo repository.MemeRepo) MemeService {
	return &memeServiceImpl{memeRepo: memeRepo}
}

func (s *memeServiceImpl) GetTemplates(ctx context.Context) ([]*dto.MemeTemplateDTO, error) {
	templates, err := s.memeRepo.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MemeTemplateDTO, 0, len(templates))
	for _, template := range templates {
		result = append(result, toTemplateDTO(template))
	}
	return result, nil
}

// ExportMeme 只做校验并返回导出描述，图片合成由客户端完成
func (s *memeServiceImpl) ExportMeme(ctx context.Context, userID uint64, req *dto.MemeExportDTO) (*dto.MemeExportResultDTO, error) {
	template, err := s.memeRepo.GetTemplateBySlug(ctx, req.TemplateSlug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	slots := parseTextSlots(template)
	if len(req.Captions) > len(slots) {
		return nil, ErrCaptionOverflow
	}
	for _, caption := range req.Captions {
		if len([]rune(caption)) > maxCaptionLength {
			return nil, ErrParamInvalid
		}
	}

	log.InfoContext(ctx, "meme export issued",
		"user_id", userID,
		"template", template.Slug,
		"captions", len(req.Captions))

	return &dto.MemeExportResultDTO{
		TemplateSlug: template.Slug,
		ImageURL:     template.ImageURL,
		Captions:     req.Captions,
		ExportToken:  uuid.NewString(),
	}, nil
}

func toTemplateDTO(template *model.MemeTemplate) *dto.MemeTemplateDTO {
	item := &dto.MemeTemplateDTO{}
	_ = copier.Copy(item, template)
	item.TextSlots = parseTextSlots(template)
	return item
}

func parseTextSlots(template *model.MemeTemplate) []string {
	var slots []string
	if err := json.Unmarshal([]byte(template.TextSlots), &slots); err != nil {
		return []string{}
	}
	return slots
}
