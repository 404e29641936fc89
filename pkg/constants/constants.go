package constants

const (
	IdentityKey = "identity"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	ServiceName = "vidtube-api"

	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"

	VideoBucket     = "video"
	ThumbnailBucket = "picture"

	EventExchange   = "vidtube_events"
	EventAuditQueue = "vidtube_audit"
)
