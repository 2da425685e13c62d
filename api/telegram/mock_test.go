package telegram

import (
	"errors"
	"gopkg.in/telebot.v3"
)

var errSendMock = errors.New("send failed")

type contextMock struct {
	telebot.Context
	upd     telebot.Update
	failing bool
	sent    []string
	replied []string
	opts    []interface{}
}

func newPrivateContext(senderId int64, txt string) *contextMock {
	return newContext(&telebot.Chat{ID: senderId, Type: telebot.ChatPrivate}, senderId, txt)
}

func newContext(chat *telebot.Chat, senderId int64, txt string) *contextMock {
	return &contextMock{
		upd: telebot.Update{
			ID: 1,
			Message: &telebot.Message{
				ID:     2,
				Sender: &telebot.User{ID: senderId, FirstName: "John", LastName: "Doe"},
				Chat:   chat,
				Text:   txt,
			},
		},
	}
}

func (cm *contextMock) Update() telebot.Update {
	return cm.upd
}

func (cm *contextMock) Message() *telebot.Message {
	switch {
	case cm.upd.Message != nil:
		return cm.upd.Message
	default:
		return cm.upd.ChannelPost
	}
}

func (cm *contextMock) Chat() *telebot.Chat {
	if m := cm.Message(); m != nil {
		return m.Chat
	}
	return nil
}

func (cm *contextMock) Sender() *telebot.User {
	if m := cm.Message(); m != nil {
		return m.Sender
	}
	return nil
}

func (cm *contextMock) Send(what interface{}, opts ...interface{}) error {
	if cm.failing {
		return errSendMock
	}
	cm.sent = append(cm.sent, what.(string))
	cm.opts = append(cm.opts, opts...)
	return nil
}

func (cm *contextMock) Reply(what interface{}, opts ...interface{}) error {
	if cm.failing {
		return errSendMock
	}
	cm.replied = append(cm.replied, what.(string))
	return nil
}

type sent struct {
	to   telebot.Recipient
	what interface{}
}

type senderMock struct {
	failing bool
	sent    []sent
}

func (sm *senderMock) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if sm.failing {
		return nil, errSendMock
	}
	sm.sent = append(sm.sent, sent{to: to, what: what})
	return &telebot.Message{}, nil
}
