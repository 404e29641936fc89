package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"vidtube.com/pkg/mq"
)

// auditor writes one structured line per domain event.
type auditor struct {
	log *logrus.Logger
}

func (a *auditor) record(_ context.Context, e *mq.Event) error {
	entry := a.log.WithFields(logrus.Fields{
		"event_id": e.EventID,
		"type":     e.Type,
		"actor":    e.ActorID,
		"target":   e.TargetID,
		"at":       time.Unix(e.Timestamp, 0).UTC().Format(time.RFC3339),
	})
	if e.TargetType != "" {
		entry = entry.WithField("target_type", e.TargetType)
	}
	switch e.Type {
	case mq.EventVideoDeleted:
		entry.Warn("video removed")
	default:
		entry.Info("activity")
	}
	return nil
}

func newRouter(a *auditor) *mq.Router {
	r := mq.NewRouter()
	r.Handle(mq.EventVideoDeleted, a.record)
	r.Fallback(a.record)
	return r
}
