package feed

import (
	"sort"

	"Terrace/internal/model"
)

// Rank 对可见帖子做确定性全序排序：score 降序，平分时 created_at 降序（新的在前）。
// 稳定纯排序，不修改入参，同样的输入永远得到同样的输出。
func Rank(posts []*model.Post) []*model.Post {
	ranked := make([]*model.Post, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}
