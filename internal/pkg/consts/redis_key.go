package consts

const (
	PostReactionKey = "post:reaction:"
	TokenRevokedKey = "token:revoked:"
)

const (
	ReportLock = "report:lock:"
)
