package telegram

import (
	"fmt"
	"github.com/bytedance/sonic"
	"gopkg.in/telebot.v3"
	"log/slog"
)

func LoggingHandlerFunc(next telebot.HandlerFunc, log *slog.Logger) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) error {
		data, _ := sonic.Marshal(tgCtx.Update())
		log.Debug(fmt.Sprintf("Update: %s", data))
		return next(tgCtx)
	}
}
