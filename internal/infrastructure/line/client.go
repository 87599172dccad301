package line

import (
	"fmt"

	"seatsync/internal/domain/entity"
	"seatsync/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client as a push delivery channel for fired
// alerts. The push target is fixed at construction (the account's LINE user
// ID from settings).
type Client struct {
	*linebot.Client
	to  string
	log logger.Logger
}

// NewClient creates a LINE Bot client from channel credentials.
func NewClient(channelSecret, channelToken, to string, log logger.Logger) (*Client, error) {
	if channelSecret == "" || channelToken == "" {
		return nil, fmt.Errorf("LINE channel credentials are not set")
	}
	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client: bot,
		to:     to,
		log:    log,
	}, nil
}

// Deliver pushes a fired alert as a text message.
func (c *Client) Deliver(alert *entity.ScheduledAlert) error {
	text := alert.Title
	if alert.Body != "" {
		text += "\n" + alert.Body
	}
	if _, err := c.PushMessage(c.to, linebot.NewTextMessage(text)).Do(); err != nil {
		return err // Return the error for the caller to handle
	}
	c.log.Debug(fmt.Sprintf("Pushed alert %s via LINE.", alert.ID))
	return nil
}
