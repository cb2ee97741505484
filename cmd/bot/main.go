package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhub/bot"
	"stayhub/bot/client"
	"stayhub/bot/session"
	"stayhub/bot/telegram"
	"stayhub/config"
	"stayhub/utils"
)

// Abandoned conversations expire from Redis after this long.
const sessionTTL = 30 * time.Minute

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.TelegramToken == "" {
		logger.Sugar().Fatal("bot: TELEGRAM_TOKEN is not configured")
	}

	sessions := session.NewRedisStore(utils.GetSessionCacheClient(), sessionTTL)
	api := client.New(config.AppConfig.APIBaseURL, config.AppConfig.AdminAPIKey)
	engine := bot.NewEngine(api, sessions, config.AppConfig.AdminChatIDs)

	tgBot, err := telegram.New(config.AppConfig.TelegramToken, engine, config.AppConfig.UploadDir)
	if err != nil {
		logger.Sugar().Fatalf("bot: failed to initialize: %v", err)
	}

	if err := tgBot.Start(); err != nil {
		logger.Sugar().Fatalf("bot: failed to start polling: %v", err)
	}
	logger.Sugar().Infof("Bot started as @%s", tgBot.Username())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Sugar().Info("bot: shutting down...")
		if err := tgBot.Stop(); err != nil {
			logger.Sugar().Errorf("bot: failed to stop cleanly: %v", err)
		}
	}()

	tgBot.Idle()
	logger.Sugar().Info("bot: stopped gracefully")
}
