package handler

import (
	"Terrace/internal/api/dto"
	"Terrace/internal/pkg/response"
	"Terrace/internal/pkg/util"
	"Terrace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationSvc service.ModerationService
}

func NewModerationHandler(moderationSvc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationSvc: moderationSvc,
	}
}

// ReportPost 举报帖子
func (s *ModerationHandler) ReportPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.ReportCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.moderationSvc.SubmitReport(c.Request.Context(), userID, postID, req.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetReportQueue 审核队列
func (s *ModerationHandler) GetReportQueue(c *gin.Context) {
	reports, err := s.moderationSvc.GetReportQueue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reports)
}

// ClaimReport 认领举报
func (s *ModerationHandler) ClaimReport(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("report_id"), 10, 64)
	if err != nil || reportID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	reviewerID := c.GetUint64("user_id")

	if err := s.moderationSvc.ClaimReport(c.Request.Context(), reviewerID, reportID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ReviewReport 裁决举报
func (s *ModerationHandler) ReviewReport(c *gin.Context) {
	reviewerID := c.GetUint64("user_id")

	var req dto.ReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.moderationSvc.ReviewReport(c.Request.Context(), reviewerID, req.ReportID, req.Decision, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetNotices 审核结果通知列表
func (s *ModerationHandler) GetNotices(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	notices, err := s.moderationSvc.GetNotices(c.Request.Context(), userID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notices)
}

// MarkNoticeRead 标记通知已读
func (s *ModerationHandler) MarkNoticeRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	noticeID := c.Param("notice_id")
	if noticeID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.moderationSvc.MarkNoticeRead(c.Request.Context(), userID, noticeID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkAllNoticesRead 一键全部已读
func (s *ModerationHandler) MarkAllNoticesRead(c *gin.Context) {
	userID := c.GetUint64("user_id")

	if err := s.moderationSvc.MarkAllNoticesRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetUnreadCount 未读通知数
func (s *ModerationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")

	count, err := s.moderationSvc.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}
