package consts

// 限流动作类，互不共享配额
const (
	RateActionPost       = "post"
	RateActionMemeExport = "meme-export"
)

const (
	LeaderboardSize = 50
)
