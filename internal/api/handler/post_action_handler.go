package handler

import (
	"Terrace/internal/api/dto"
	"Terrace/internal/pkg/response"
	"Terrace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc: actionSvc,
	}
}

// VotePost 对帖子投票
func (s *PostActionHandler) VotePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.VoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.actionSvc.VotePost(c.Request.Context(), userID, postID, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ReactPost 表态/取消表态
func (s *PostActionHandler) ReactPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.ReactionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if req.Action == "add" {
		err = s.actionSvc.AddReaction(c.Request.Context(), userID, postID, req.Reaction)
	} else {
		err = s.actionSvc.RemoveReaction(c.Request.Context(), userID, postID, req.Reaction)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetReactions 获取帖子各类表态计数
func (s *PostActionHandler) GetReactions(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	counts, err := s.actionSvc.GetReactionCounts(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}
