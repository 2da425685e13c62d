package telegram

import (
	"errors"
	"github.com/awakari/bot-autoreply/config"
	"github.com/stretchr/testify/assert"
	"gopkg.in/telebot.v3"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const respGetMe = `{"ok":true,"result":{"id":1234,"is_bot":true,"first_name":"Auto Reply","username":"mybot"}}`
const respInternal = `{"ok":false,"error_code":500,"description":"Internal Server Error"}`

func newApiServer(failCount int32) (srv *httptest.Server, calls *atomic.Int32) {
	calls = &atomic.Int32{}
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			if calls.Add(1) <= failCount {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(respInternal))
				return
			}
			_, _ = w.Write([]byte(respGetMe))
		default:
			_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
		}
	}))
	return
}

func newTestConfig(url string) (cfg config.TelegramConfig) {
	cfg.Url = url
	cfg.Token = "1234:token"
	cfg.PollTimeout = time.Second
	cfg.InitBackoff.Init = 10 * time.Millisecond
	cfg.InitBackoff.Factor = 1
	cfg.InitBackoff.LimitTotal = time.Second
	return
}

func TestNewBot(t *testing.T) {
	cases := map[string]struct {
		failCount  int32
		limitTotal time.Duration
		err        bool
	}{
		"ok": {},
		"retry": {
			failCount:  2,
			limitTotal: time.Second,
		},
		"exhausted": {
			failCount:  1_000_000,
			limitTotal: 100 * time.Millisecond,
			err:        true,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			srv, calls := newApiServer(c.failCount)
			defer srv.Close()
			cfg := newTestConfig(srv.URL)
			if c.limitTotal > 0 {
				cfg.InitBackoff.LimitTotal = c.limitTotal
			}
			b, err := NewBot(cfg, nil, log)
			switch c.err {
			case true:
				assert.NotNil(t, err)
			default:
				assert.Nil(t, err)
				assert.Equal(t, "@mybot", Mention(b.Me))
				assert.Equal(t, c.failCount+1, calls.Load())
			}
		})
	}
}

type routerMock struct {
	texts  chan string
	starts chan string
	errs   chan error
	fail   bool
	panics bool
}

func newRouterMock(fail bool) *routerMock {
	return &routerMock{
		texts:  make(chan string, 1),
		starts: make(chan string, 1),
		errs:   make(chan error, 1),
		fail:   fail,
	}
}

var errRouterMock = errors.New("router failed")
var errRouterPanic = errors.New("router panicked")

func (rm *routerMock) Text(tgCtx telebot.Context) (err error) {
	rm.texts <- tgCtx.Text()
	if rm.panics {
		panic(errRouterPanic)
	}
	if rm.fail {
		err = errRouterMock
	}
	return
}

func (rm *routerMock) Start(tgCtx telebot.Context) (err error) {
	rm.starts <- tgCtx.Text()
	return
}

func (rm *routerMock) Error(err error, tgCtx telebot.Context) {
	rm.errs <- err
}

func receive[T any](t *testing.T, ch chan T) (v T) {
	select {
	case v = <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout")
	}
	return
}

func TestRegister(t *testing.T) {
	srv, _ := newApiServer(0)
	defer srv.Close()
	rm := newRouterMock(true)
	b, err := NewBot(newTestConfig(srv.URL), rm.Error, log)
	assert.Nil(t, err)
	Register(b, rm, log)
	//
	b.ProcessUpdate(telebot.Update{
		ID: 1,
		Message: &telebot.Message{
			Sender: &telebot.User{ID: 1},
			Chat:   &telebot.Chat{ID: 1, Type: telebot.ChatPrivate},
			Text:   "hi",
		},
	})
	assert.Equal(t, "hi", receive(t, rm.texts))
	assert.ErrorIs(t, receive(t, rm.errs), errRouterMock)
	//
	b.ProcessUpdate(telebot.Update{
		ID: 2,
		Message: &telebot.Message{
			Sender: &telebot.User{ID: 1},
			Chat:   &telebot.Chat{ID: 1, Type: telebot.ChatPrivate},
			Text:   "/start",
		},
	})
	assert.Equal(t, "/start", receive(t, rm.starts))
	//
	b.ProcessUpdate(telebot.Update{
		ID: 3,
		ChannelPost: &telebot.Message{
			Chat: &telebot.Chat{ID: -200, Type: telebot.ChatChannel},
			Text: "news @mybot",
		},
	})
	assert.Equal(t, "news @mybot", receive(t, rm.texts))
	assert.ErrorIs(t, receive(t, rm.errs), errRouterMock)
}

func TestRegister_Panic(t *testing.T) {
	srv, _ := newApiServer(0)
	defer srv.Close()
	rm := newRouterMock(false)
	rm.panics = true
	b, err := NewBot(newTestConfig(srv.URL), rm.Error, log)
	assert.Nil(t, err)
	Register(b, rm, log)
	b.ProcessUpdate(telebot.Update{
		ID: 1,
		Message: &telebot.Message{
			Sender: &telebot.User{ID: 1},
			Chat:   &telebot.Chat{ID: 1, Type: telebot.ChatPrivate},
			Text:   "hi",
		},
	})
	assert.Equal(t, "hi", receive(t, rm.texts))
	assert.ErrorIs(t, receive(t, rm.errs), errRouterPanic)
	// the bot keeps dispatching after the panic
	rm.panics = false
	b.ProcessUpdate(telebot.Update{
		ID: 2,
		Message: &telebot.Message{
			Sender: &telebot.User{ID: 1},
			Chat:   &telebot.Chat{ID: 1, Type: telebot.ChatPrivate},
			Text:   "/start",
		},
	})
	assert.Equal(t, "/start", receive(t, rm.starts))
}

func TestAllowedUpdates(t *testing.T) {
	for _, u := range []string{
		"message",
		"channel_post",
		"callback_query",
		"chat_member",
		"message_reaction",
		"chat_boost",
		"business_message",
	} {
		assert.Contains(t, AllowedUpdates, u)
	}
}
