// Package events publishes interview lifecycle notifications.
package events

import (
	"context"
	"time"
)

// TypeInterviewCreated marks an interview saved to the persistence layer.
const TypeInterviewCreated = "interview.created"

// InterviewCreated is emitted once per persisted interview.
type InterviewCreated struct {
	Type           string    `json:"type"`
	InterviewID    int64     `json:"interviewId"`
	UserID         int64     `json:"userId"`
	Urgency        string    `json:"urgency"`
	ConditionCount int       `json:"conditionCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Publisher delivers events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event InterviewCreated) error
	Close() error
}

// NopPublisher discards every event.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, InterviewCreated) error { return nil }

// Close does nothing.
func (NopPublisher) Close() error { return nil }
