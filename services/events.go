package services

import (
	"encoding/json"
	"log"
	"time"

	"checkitoff/config"
	"checkitoff/global"
	"checkitoff/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

// VoteEvent is the message published after a committed vote. Consumers see
// the appended entry plus the tally the article settled on.
type VoteEvent struct {
	NewsID    uint      `json:"news_id"`
	VoteID    uint      `json:"vote_id"`
	VoterName string    `json:"voter"`
	Stance    string    `json:"stance"`
	UpVotes   int64     `json:"upVotes"`
	DownVotes int64     `json:"downVotes"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

// PublishVoteEvent sends the event to the configured queue. Best effort: when
// RabbitMQ is not configured or the publish fails, the vote is already
// committed and the failure is only logged.
func PublishVoteEvent(vote *models.Vote, tally Tally) {
	if global.RabbitChannel == nil {
		return
	}

	event := VoteEvent{
		NewsID:    vote.NewsID,
		VoteID:    vote.ID,
		VoterName: vote.VoterName,
		Stance:    vote.Stance,
		UpVotes:   tally.UpVotes,
		DownVotes: tally.DownVotes,
		Status:    tally.Status,
		At:        time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("vote event marshal failed: %v", err)
		return
	}

	queue := config.AppConfig.RabbitMQ.Queue
	if queue == "" {
		queue = "vote.events"
	}

	err = global.RabbitChannel.Publish("", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Printf("vote event publish failed for news %d: %v", vote.NewsID, err)
	}
}
