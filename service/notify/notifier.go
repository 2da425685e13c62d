package notify

import (
	"fmt"
	"github.com/awakari/bot-autoreply/config"
	"github.com/awakari/bot-autoreply/model/message"
	"github.com/awakari/bot-autoreply/model/notification"
	"github.com/awakari/bot-autoreply/util"
	"github.com/bytedance/sonic"
	"github.com/segmentio/ksuid"
	"log/slog"
)

// LenMaxBody is the Telegram text message length limit.
const LenMaxBody = 4096

const fmtBodyHead = "⚠️ An error occurred!\n\nError: %s\nUpdate: "
const fmtBodyTail = "\nIncident: %s"
const fmtLogErr = "Exception while handling update, incident=%s, chat type=%s, err=%s, update=%s"

type Notifier interface {

	// OnError logs the handler error and returns the admin notification when the error originates from a private chat.
	OnError(err error, chatType message.ChatType, upd any) (n notification.Admin, ok bool)
}

type notifier struct {
	cfg config.ReplyConfig
	log *slog.Logger
}

func NewNotifier(cfg config.ReplyConfig, log *slog.Logger) Notifier {
	return notifier{
		cfg: cfg,
		log: log,
	}
}

func (nf notifier) OnError(err error, chatType message.ChatType, upd any) (n notification.Admin, ok bool) {
	incidentId := ksuid.New().String()
	updTxt := formatUpdate(upd)
	nf.log.Error(fmt.Sprintf(fmtLogErr, incidentId, chatType, err, updTxt))
	if chatType == message.ChatTypePrivate && nf.cfg.AdminEnabled() {
		n = notification.Admin{
			RecipientId: nf.cfg.AdminUserId,
			IncidentId:  incidentId,
			Body:        formatBody(err, updTxt, incidentId),
		}
		ok = true
	}
	return
}

func formatUpdate(upd any) (txt string) {
	switch upd {
	case nil:
		txt = "null"
	default:
		data, err := sonic.Marshal(upd)
		switch err {
		case nil:
			txt = string(data)
		default:
			txt = fmt.Sprintf("%+v", upd)
		}
	}
	return
}

// the update is truncated first so the error and the incident id survive
func formatBody(err error, updTxt, incidentId string) (body string) {
	head := fmt.Sprintf(fmtBodyHead, err)
	tail := fmt.Sprintf(fmtBodyTail, incidentId)
	lenLeft := LenMaxBody - len(head) - len(tail)
	switch {
	case lenLeft > 0:
		body = head + util.TruncateStringUtf8(updTxt, lenLeft) + tail
	default:
		body = util.TruncateStringUtf8(head+updTxt+tail, LenMaxBody)
	}
	return
}
