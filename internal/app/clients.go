package app

import (
	"github.com/yungbote/notebook-gallery-backend/internal/clients/openai"
	"github.com/yungbote/notebook-gallery-backend/internal/clients/telegram"
	"github.com/yungbote/notebook-gallery-backend/internal/logger"
)

type Clients struct {
	OpenAI       openai.Client
	OwnerChannel telegram.Channel
}

// wireClients builds the outbound clients. Both are optional: the enhancer
// falls back to the original description without OpenAI, and notifications
// are skipped without an owner channel.
func wireClients(log *logger.Logger) Clients {
	log.Info("Wiring clients...")

	openaiClient, err := openai.NewClient(log)
	if err != nil {
		log.Warn("Could not init OpenAI client, enhancement disabled", "error", err)
		openaiClient = nil
	}

	ownerChannel, err := telegram.NewChannel(log)
	if err != nil {
		log.Warn("Could not init owner notification channel, notifications disabled", "error", err)
		ownerChannel = nil
	}

	return Clients{
		OpenAI:       openaiClient,
		OwnerChannel: ownerChannel,
	}
}
