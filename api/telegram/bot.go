package telegram

import (
	"errors"
	"fmt"
	"github.com/awakari/bot-autoreply/config"
	"github.com/cenkalti/backoff/v4"
	"gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
	"log/slog"
	"time"
)

const CmdStart = "/start"

// AllowedUpdates requests every update type from the long polling.
var AllowedUpdates = []string{
	"message",
	"edited_message",
	"channel_post",
	"edited_channel_post",
	"inline_query",
	"chosen_inline_result",
	"callback_query",
	"shipping_query",
	"pre_checkout_query",
	"poll",
	"poll_answer",
	"my_chat_member",
	"chat_member",
	"chat_join_request",
	"message_reaction",
	"message_reaction_count",
	"chat_boost",
	"removed_chat_boost",
	"business_connection",
	"business_message",
	"edited_business_message",
	"deleted_business_messages",
	"purchased_paid_media",
}

var Commands = []telebot.Command{
	{
		Text:        "start",
		Description: "Start",
	},
}

const fmtNewBotFailed = "Failed to connect the Telegram bot API, retrying in %s: %s"

// NewBot connects the Telegram Bot API, retrying with a backoff unless the token is rejected.
func NewBot(cfg config.TelegramConfig, onError func(error, telebot.Context), log *slog.Logger) (b *telebot.Bot, err error) {
	s := telebot.Settings{
		URL:   cfg.Url,
		Token: cfg.Token,
		Poller: &telebot.LongPoller{
			Timeout:        cfg.PollTimeout,
			AllowedUpdates: AllowedUpdates,
		},
		OnError: onError,
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitBackoff.Init
	bo.Multiplier = cfg.InitBackoff.Factor
	bo.MaxElapsedTime = cfg.InitBackoff.LimitTotal
	err = backoff.RetryNotify(
		func() (errConn error) {
			b, errConn = telebot.NewBot(s)
			if errors.Is(errConn, telebot.ErrUnauthorized) {
				errConn = backoff.Permanent(errConn)
			}
			return
		},
		bo,
		func(err error, d time.Duration) {
			log.Warn(fmt.Sprintf(fmtNewBotFailed, d, err))
		},
	)
	return
}

// Register binds the router to the bot dispatch table. The error hook is set at the bot creation,
// handler panics are passed to it as well.
func Register(b *telebot.Bot, r Router, log *slog.Logger) {
	b.Use(middleware.Recover())
	b.Use(func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return LoggingHandlerFunc(next, log)
	})
	b.Handle(CmdStart, r.Start)
	b.Handle(telebot.OnText, r.Text)
	b.Handle(telebot.OnChannelPost, r.Text)
}
