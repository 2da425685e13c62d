package main

import (
	"context"
	"errors"
	"fmt"
	apiHttpHealth "github.com/awakari/bot-autoreply/api/http/health"
	apiTelegram "github.com/awakari/bot-autoreply/api/telegram"
	"github.com/awakari/bot-autoreply/config"
	"github.com/awakari/bot-autoreply/service/notify"
	"github.com/awakari/bot-autoreply/service/welcome"
	"github.com/gin-gonic/gin"
	"gopkg.in/telebot.v3"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {

	// init config and logger
	slog.Info("starting...")
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		slog.Error(fmt.Sprintf("failed to load the config: %s", err))
		os.Exit(1)
	}
	opts := slog.HandlerOptions{
		Level: slog.Level(cfg.Log.Level),
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &opts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// init Telegram bot, the router is assigned before the polling starts
	var r apiTelegram.Router
	onError := func(err error, tgCtx telebot.Context) {
		r.Error(err, tgCtx)
	}
	var b *telebot.Bot
	b, err = apiTelegram.NewBot(cfg.Api.Telegram, onError, log)
	if err != nil {
		log.Error(fmt.Sprintf("failed to init the Telegram bot: %s", err))
		os.Exit(1)
	}
	mention := apiTelegram.Mention(b.Me)
	if mention == "" {
		log.Warn("bot has no username, group messages will not be replied")
	}
	err = b.SetCommands(apiTelegram.Commands)
	if err != nil {
		log.Warn(fmt.Sprintf("failed to set the bot commands: %s", err))
	}

	// init handlers
	notifier := notify.NewNotifier(cfg.Reply, log)
	r = apiTelegram.NewRouter(cfg.Reply, mention, welcome.NewFormat(), notifier, b, log)
	r = apiTelegram.NewRouterLogging(r, log)
	apiTelegram.Register(b, r, log)

	// health endpoint
	var srvHealth *http.Server
	if cfg.Api.Http.Port > 0 {
		gin.SetMode(gin.ReleaseMode)
		srvHealth = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Api.Http.Port),
			Handler: apiHttpHealth.NewRouter(apiHttpHealth.NewHandler(mention, time.Now())),
		}
		go func() {
			log.Info(fmt.Sprintf("starting to listen the health endpoint @ port #%d...", cfg.Api.Http.Port))
			errHttp := srvHealth.ListenAndServe()
			if errHttp != nil && !errors.Is(errHttp, http.ErrServerClosed) {
				log.Error(fmt.Sprintf("health endpoint failure: %s", errHttp))
			}
		}()
	}

	log.Info(fmt.Sprintf("bot %s is running...", mention))
	go b.Start()

	<-ctx.Done()
	log.Info("stopping...")
	b.Stop()
	if srvHealth != nil {
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = srvHealth.Shutdown(ctxShutdown)
		if err != nil {
			log.Error(fmt.Sprintf("failed to stop the health endpoint: %s", err))
		}
	}
}
