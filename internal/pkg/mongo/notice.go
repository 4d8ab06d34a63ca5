package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 通知类型
const (
	NoticeTypeReportResolved  = 1 // 举报被确认
	NoticeTypeReportDismissed = 2 // 举报被驳回
	NoticeTypeStrikeApplied   = 3 // 账号被记违规
)

// NoticeModel 审核结果通知
type NoticeModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"` // 通知接收者
	Type       int8               `bson:"type" json:"type"`
	ReportID   uint64             `bson:"report_id" json:"reportId"`
	PostID     uint64             `bson:"post_id" json:"postId"`
	Content    string             `bson:"content" json:"content"` // 通知文案
	Payload    map[string]any     `bson:"payload" json:"payload"` // 额外元数据，如处置状态快照
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
