package telegram

import (
	"fmt"
	"github.com/awakari/bot-autoreply/config"
	"github.com/awakari/bot-autoreply/model/message"
	"github.com/awakari/bot-autoreply/service/notify"
	"github.com/awakari/bot-autoreply/service/reply"
	"github.com/awakari/bot-autoreply/service/welcome"
	"gopkg.in/telebot.v3"
	"log/slog"
)

// Router has one method per the event kind registered in the bot dispatch table.
type Router interface {
	Text(tgCtx telebot.Context) (err error)
	Start(tgCtx telebot.Context) (err error)
	Error(err error, tgCtx telebot.Context)
}

// Sender is the part of the *telebot.Bot used to deliver the admin notifications.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

type router struct {
	cfg      config.ReplyConfig
	mention  string
	format   welcome.Format
	notifier notify.Notifier
	sender   Sender
	log      *slog.Logger
}

const fmtNotifyFailed = "Failed to notify the admin %d about the incident %s: %s"

func NewRouter(
	cfg config.ReplyConfig,
	mention string,
	format welcome.Format,
	notifier notify.Notifier,
	sender Sender,
	log *slog.Logger,
) Router {
	return router{
		cfg:      cfg,
		mention:  mention,
		format:   format,
		notifier: notifier,
		sender:   sender,
		log:      log,
	}
}

func (r router) Text(tgCtx telebot.Context) (err error) {
	var msg message.Incoming
	msg, err = Incoming(tgCtx, r.mention)
	if err == nil && !msg.Command {
		d := reply.Route(msg, r.cfg)
		if d.Reply {
			err = tgCtx.Reply(d.Text)
		}
	}
	return
}

func (r router) Start(tgCtx telebot.Context) (err error) {
	var s message.Sender
	s, err = ConvertUser(tgCtx.Sender())
	if err == nil {
		err = tgCtx.Send(r.format.Greeting(s), telebot.ModeHTML)
	}
	return
}

// Error is never propagated further, telebot passes a nil context for the poller errors.
func (r router) Error(err error, tgCtx telebot.Context) {
	chatType := message.ChatTypeUnknown
	var upd any
	if tgCtx != nil {
		chatType = ChatType(tgCtx.Chat())
		upd = tgCtx.Update()
	}
	n, ok := r.notifier.OnError(err, chatType, upd)
	if ok {
		_, errSend := r.sender.Send(&telebot.User{ID: n.RecipientId}, n.Body)
		if errSend != nil {
			r.log.Error(fmt.Sprintf(fmtNotifyFailed, n.RecipientId, n.IncidentId, errSend))
		}
	}
}
