package telegram

import (
	"context"
	"fmt"
	"github.com/awakari/bot-autoreply/util"
	"gopkg.in/telebot.v3"
	"log/slog"
)

type routerLogging struct {
	r   Router
	log *slog.Logger
}

func NewRouterLogging(r Router, log *slog.Logger) Router {
	return routerLogging{
		r:   r,
		log: log,
	}
}

func (rl routerLogging) Text(tgCtx telebot.Context) (err error) {
	err = rl.r.Text(tgCtx)
	rl.log.Log(context.TODO(), util.LogLevel(err), fmt.Sprintf("router.Text(chat=%s, sender=%s): err=%s", chatId(tgCtx), senderId(tgCtx), err))
	return
}

func (rl routerLogging) Start(tgCtx telebot.Context) (err error) {
	err = rl.r.Start(tgCtx)
	rl.log.Log(context.TODO(), util.LogLevel(err), fmt.Sprintf("router.Start(chat=%s, sender=%s): err=%s", chatId(tgCtx), senderId(tgCtx), err))
	return
}

// the notifier logs the error itself
func (rl routerLogging) Error(err error, tgCtx telebot.Context) {
	rl.r.Error(err, tgCtx)
}

func chatId(tgCtx telebot.Context) (id string) {
	id = "<none>"
	if chat := tgCtx.Chat(); chat != nil {
		id = chat.Recipient()
	}
	return
}

func senderId(tgCtx telebot.Context) (id string) {
	id = "<none>"
	if u := tgCtx.Sender(); u != nil {
		id = u.Recipient()
	}
	return
}
