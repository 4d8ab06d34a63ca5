package moderation

import (
	"Terrace/internal/model"
)

// ApplyStrike 根据当前违规次数计算下一个处置状态，只升不降：
// 0 次 → muted，1 次 → suspended，2 次及以上 → banned
func ApplyStrike(currentStrikes int) string {
	if currentStrikes >= 2 {
		return model.ModerationStateBanned
	}
	if currentStrikes == 1 {
		return model.ModerationStateSuspended
	}
	return model.ModerationStateMuted
}

// IsPostingBlocked 处于 suspended/banned 状态的账号禁止发帖、投票和表态
func IsPostingBlocked(state string) bool {
	return state == model.ModerationStateSuspended || state == model.ModerationStateBanned
}
