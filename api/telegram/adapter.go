package telegram

import (
	"errors"
	"github.com/awakari/bot-autoreply/model/message"
	"gopkg.in/telebot.v3"
)

var ErrNoMessage = errors.New("update contains no message")
var ErrNoSender = errors.New("message sender is missing")

// Incoming converts the telebot update to the internal message shape.
func Incoming(tgCtx telebot.Context, mention string) (msg message.Incoming, err error) {
	m := tgCtx.Message()
	if m == nil {
		err = ErrNoMessage
	}
	if err == nil {
		msg.ChatType = ChatType(m.Chat)
		if m.Chat != nil {
			msg.ChatId = m.Chat.ID
		}
		if m.Sender != nil {
			msg.SenderId = m.Sender.ID
		}
		msg.Text = m.Text
		msg.HasText = m.Text != ""
		msg.BotMention = mention
		msg.Command = isCommand(m)
	}
	return
}

func ChatType(chat *telebot.Chat) (ct message.ChatType) {
	if chat != nil {
		switch chat.Type {
		case telebot.ChatPrivate:
			ct = message.ChatTypePrivate
		case telebot.ChatGroup:
			ct = message.ChatTypeGroup
		case telebot.ChatSuperGroup:
			ct = message.ChatTypeSuperGroup
		case telebot.ChatChannel, telebot.ChatChannelPrivate:
			ct = message.ChatTypeChannel
		}
	}
	return
}

func ConvertUser(u *telebot.User) (s message.Sender, err error) {
	switch u {
	case nil:
		err = ErrNoSender
	default:
		s = message.Sender{
			Id:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
		}
	}
	return
}

// Mention returns the bot handle to look for in the group messages, empty if the bot has no username.
func Mention(me *telebot.User) (mention string) {
	if me != nil && me.Username != "" {
		mention = "@" + me.Username
	}
	return
}

func isCommand(m *telebot.Message) bool {
	for _, e := range m.Entities {
		if e.Type == telebot.EntityCommand && e.Offset == 0 {
			return true
		}
	}
	return false
}
