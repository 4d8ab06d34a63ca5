package moderation

import (
	"strings"
)

// blockedKeywords 命中即自动隐藏的固定词表
var blockedKeywords = []string{
	"racist",
	"threat",
	"violence",
	"political propaganda",
}

// blockedMediaPatterns 针对媒体链接的固定拦截片段
var blockedMediaPatterns = []string{
	"gore",
	"nsfw",
}

// ShouldAutoHide 判断新内容是否需要自动隐藏。纯函数，大小写不敏感的子串匹配，
// 客户端与服务端可以重复调用，结果取逻辑或（服务端复核始终生效）。
func ShouldAutoHide(text, mediaRef string) bool {
	normalized := strings.ToLower(text)
	for _, word := range blockedKeywords {
		if strings.Contains(normalized, word) {
			return true
		}
	}

	if mediaRef != "" {
		ref := strings.ToLower(mediaRef)
		for _, pattern := range blockedMediaPatterns {
			if strings.Contains(ref, pattern) {
				return true
			}
		}
	}

	return false
}
