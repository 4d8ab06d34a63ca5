package api

import "Terrace/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	ModerationHandler *handler.ModerationHandler
	TeamHandler       *handler.TeamHandler
	MemeHandler       *handler.MemeHandler
}
