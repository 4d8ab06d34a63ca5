package api

import (
	"Terrace/internal/api/config"
	"Terrace/internal/api/middleware"
	"Terrace/internal/pkg/consts"
	"Terrace/internal/pkg/logger"
	"Terrace/internal/pkg/ratelimit"
	"Terrace/internal/pkg/security"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	rateCfg := config.Cfg.RateLimit
	postLimiter := ratelimit.NewLimiter(rateCfg.PostPerMinute, time.Minute)
	memeLimiter := ratelimit.NewLimiter(rateCfg.MemeExportPerMinute, time.Minute)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/feed", group.PostHandler.GetFeed)
				authOptGroup.GET("/search", group.PostHandler.SearchPost)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/reactions", group.PostActionHandler.GetReactions)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("",
					middleware.RateLimitMiddleware(consts.RateActionPost, postLimiter),
					group.PostHandler.CreatePost)
				authGroup.POST("/:post_id/vote", group.PostActionHandler.VotePost)
				authGroup.POST("/:post_id/reaction", group.PostActionHandler.ReactPost)
				authGroup.POST("/:post_id/report", group.ModerationHandler.ReportPost)
			}
		}

		moderationGroup := apiGroup.Group("/moderation")
		{
			noticeGroup := moderationGroup.Group("/notices")
			noticeGroup.Use(middleware.AuthMiddleware())
			{
				noticeGroup.GET("", group.ModerationHandler.GetNotices)
				noticeGroup.GET("/unread", group.ModerationHandler.GetUnreadCount)
				noticeGroup.PUT("/read-all", group.ModerationHandler.MarkAllNoticesRead)
				noticeGroup.PUT("/:notice_id/read", group.ModerationHandler.MarkNoticeRead)
			}

			// 审核队列与裁决仅限审核员和管理员
			reviewGroup := moderationGroup.Group("")
			reviewGroup.Use(middleware.AuthMiddleware())
			reviewGroup.Use(middleware.CheckRoles(security.RoleModerator, security.RoleAdmin))
			{
				reviewGroup.GET("/reports", group.ModerationHandler.GetReportQueue)
				reviewGroup.POST("/reports", group.ModerationHandler.ReviewReport)
				reviewGroup.POST("/reports/:report_id/claim", group.ModerationHandler.ClaimReport)
				reviewGroup.GET("/hidden-posts", group.PostHandler.GetHiddenPosts)
			}
		}

		teamGroup := apiGroup.Group("/teams")
		{
			teamGroup.GET("", group.TeamHandler.GetTeams)

			authGroup := teamGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.PUT("/primary/:team_id", group.TeamHandler.SetPrimaryTeam)
			}
		}

		apiGroup.GET("/matches", group.TeamHandler.GetMatches)
		apiGroup.GET("/leaderboard", group.TeamHandler.GetLeaderboard)

		memeGroup := apiGroup.Group("/memes")
		{
			memeGroup.GET("/templates", group.MemeHandler.GetTemplates)

			authGroup := memeGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/export",
					middleware.RateLimitMiddleware(consts.RateActionMemeExport, memeLimiter),
					group.MemeHandler.ExportMeme)
			}
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware())
		adminGroup.Use(middleware.CheckRoles(security.RoleAdmin))
		{
			adminGroup.POST("/team-override", group.TeamHandler.OverridePrimaryTeam)
		}
	}

	return r
}
