package reply

import (
	"github.com/awakari/bot-autoreply/config"
	"github.com/awakari/bot-autoreply/model/message"
	"strings"
)

// Route decides whether to auto-reply to the message. It's a pure function of its arguments.
func Route(msg message.Incoming, cfg config.ReplyConfig) (d message.Decision) {
	switch {
	// without an admin, a senderless channel post (id 0) must not count as the admin's message
	case cfg.AdminEnabled() && msg.SenderId == cfg.AdminUserId:
		// never reply to the admin
	case msg.ChatType != message.ChatTypePrivate:
		if mentioned(msg) {
			d = message.DecisionReply(cfg.AutoReplyText)
		}
	default:
		d = message.DecisionReply(cfg.AutoReplyText)
	}
	return
}

// an empty handle is never considered as mentioned, otherwise every group message would match
func mentioned(msg message.Incoming) bool {
	return msg.HasText && msg.BotMention != "" && strings.Contains(msg.Text, msg.BotMention)
}
