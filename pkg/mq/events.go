package mq

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventVideoPublished  = "video.published"
	EventVideoDeleted    = "video.deleted"
	EventCommentCreated  = "comment.created"
	EventLikeAdded       = "like.added"
	EventLikeRemoved     = "like.removed"
	EventSubscribed      = "subscription.added"
	EventUnsubscribed    = "subscription.removed"
	EventTweetCreated    = "tweet.created"
	EventPlaylistChanged = "playlist.changed"
)

// Event is the payload published after a committed write. Type doubles as the
// routing key on the topic exchange.
type Event struct {
	EventID    string `json:"eventId"`
	Type       string `json:"type"`
	ActorID    int64  `json:"actorId,string"`
	TargetType string `json:"targetType,omitempty"`
	TargetID   int64  `json:"targetId,string"`
	Timestamp  int64  `json:"timestamp"`
}

func NewEvent(typ string, actor int64, targetType string, target int64) *Event {
	return &Event{
		EventID:    uuid.NewString(),
		Type:       typ,
		ActorID:    actor,
		TargetType: targetType,
		TargetID:   target,
		Timestamp:  time.Now().Unix(),
	}
}
