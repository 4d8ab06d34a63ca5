package handler

import (
	"Terrace/internal/api/dto"
	"Terrace/internal/pkg/response"
	"Terrace/internal/pkg/util"
	"Terrace/internal/service"

	"github.com/gin-gonic/gin"
)

type MemeHandler struct {
	memeSvc service.MemeService
}

func NewMemeHandler(memeSvc service.MemeService) *MemeHandler {
	return &MemeHandler{
		memeSvc: memeSvc,
	}
}

// GetTemplates 表情包模板列表
func (s *MemeHandler) GetTemplates(c *gin.Context) {
	templates, err := s.memeSvc.GetTemplates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, templates)
}

// ExportMeme 校验并签发导出描述
func (s *MemeHandler) ExportMeme(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.MemeExportDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.memeSvc.ExportMeme(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
