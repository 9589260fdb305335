package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a directed edge: subscriber follows channel. At most one
// edge per pair; subscriber == channel is rejected before the store.
type Subscription struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubscriberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sub_edge,priority:1;index" json:"subscriber_id"`
	ChannelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sub_edge,priority:2;index" json:"channel_id"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (Subscription) TableName() string { return "subscriptions" }
