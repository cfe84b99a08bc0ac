package entities

import (
	"time"

	"github.com/google/uuid"
)

// MaxMentionLength bounds SlackResponderConfig.UsernameToMention.
const MaxMentionLength = 50

// SlackResponderConfig is the Slack channel a project reports to.
type SlackResponderConfig struct {
	ID                int64
	TeamName          string
	TeamID            string
	TeamIcon          string
	ChannelName       string
	ChannelID         string
	UsernameToMention string
}

// SlackResponderLinker is a pending association between a project and a Slack channel.
type SlackResponderLinker struct {
	ID        uuid.UUID
	ProjectID int64
	CreatedAt time.Time
}

// LinkResult is returned when a new Slack linking handshake is started.
type LinkResult struct {
	Linker        SlackResponderLinker
	SlackClientID string
}
