// Package telegram delivers the conversation engine over the Telegram Bot
// API. It translates updates into engine calls and engine replies into send
// and edit requests.
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/callbackquery"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"
	"go.uber.org/zap"

	"stayhub/bot"
	"stayhub/utils"
)

var commands = []string{
	"start", "help", "register", "search", "book", "mybookings",
	"feedback", "admin", "done", "sendphotos", "view_feedback",
}

// Bot wires a Telegram long-polling loop to the conversation engine.
type Bot struct {
	tg        *gotgbot.Bot
	updater   *ext.Updater
	engine    *bot.Engine
	uploadDir string
	http      *http.Client
}

// New creates the Telegram delivery layer. uploadDir is where inbound room
// photos are downloaded before being forwarded to the backend.
func New(token string, engine *bot.Engine, uploadDir string) (*Bot, error) {
	tg, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		tg:        tg,
		engine:    engine,
		uploadDir: uploadDir,
		http:      &http.Client{Timeout: 30 * time.Second},
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(_ *gotgbot.Bot, _ *ext.Context, err error) ext.DispatcherAction {
			utils.GetLogger().Error("Update handler failed", zap.Error(err))
			return ext.DispatcherActionNoop
		},
	})

	for _, cmd := range commands {
		dispatcher.AddHandler(handlers.NewCommand(cmd, b.onCommand(cmd)))
	}
	dispatcher.AddHandler(handlers.NewCallback(callbackquery.All, b.onCallback))
	dispatcher.AddHandler(handlers.NewMessage(message.Photo, b.onPhoto))
	dispatcher.AddHandler(handlers.NewMessage(message.Text, b.onText))

	b.updater = ext.NewUpdater(dispatcher, nil)
	return b, nil
}

// Start begins long polling. It returns once polling is established; use
// Idle to block until Stop is called.
func (b *Bot) Start() error {
	return b.updater.StartPolling(b.tg, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: 10 * time.Second,
			},
		},
	})
}

// Idle blocks until the updater stops.
func (b *Bot) Idle() {
	b.updater.Idle()
}

// Stop halts polling and the dispatcher.
func (b *Bot) Stop() error {
	return b.updater.Stop()
}

// Username returns the authenticated bot account's username.
func (b *Bot) Username() string {
	return b.tg.User.Username
}

func sender(u *gotgbot.User) bot.Sender {
	if u == nil {
		return bot.Sender{}
	}
	return bot.Sender{ID: u.Id, FirstName: u.FirstName, LastName: u.LastName}
}

func (b *Bot) onCommand(name string) handlers.Response {
	return func(tg *gotgbot.Bot, ctx *ext.Context) error {
		replies := b.engine.HandleCommand(context.Background(), sender(ctx.EffectiveUser), name)
		return b.render(tg, ctx, replies)
	}
}

func (b *Bot) onText(tg *gotgbot.Bot, ctx *ext.Context) error {
	text := ctx.EffectiveMessage.Text
	if strings.HasPrefix(text, "/") {
		return nil
	}
	replies := b.engine.HandleText(context.Background(), sender(ctx.EffectiveUser), text)
	return b.render(tg, ctx, replies)
}

func (b *Bot) onCallback(tg *gotgbot.Bot, ctx *ext.Context) error {
	cb := ctx.CallbackQuery
	if _, err := cb.Answer(tg, nil); err != nil {
		utils.GetLogger().Warn("Failed to answer callback query", zap.Error(err))
	}
	replies := b.engine.HandleCallback(context.Background(), sender(ctx.EffectiveUser), cb.Data)
	return b.render(tg, ctx, replies)
}

func (b *Bot) onPhoto(tg *gotgbot.Bot, ctx *ext.Context) error {
	photos := ctx.EffectiveMessage.Photo
	if len(photos) == 0 {
		return nil
	}
	// The last size is the largest rendition.
	localPath, err := b.downloadPhoto(tg, photos[len(photos)-1])
	if err != nil {
		utils.GetLogger().Error("Failed to download photo", zap.Error(err))
		_, err = ctx.EffectiveMessage.Reply(tg, "❌ Failed to receive photo. Please try again.", nil)
		return err
	}
	replies := b.engine.HandlePhoto(context.Background(), sender(ctx.EffectiveUser), localPath)
	return b.render(tg, ctx, replies)
}

func (b *Bot) downloadPhoto(tg *gotgbot.Bot, photo gotgbot.PhotoSize) (string, error) {
	file, err := tg.GetFile(photo.FileId, nil)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file: %w", err)
	}

	resp, err := b.http.Get(file.URL(tg, nil))
	if err != nil {
		return "", fmt.Errorf("failed to fetch file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching file", resp.StatusCode)
	}

	if err := os.MkdirAll(b.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	localPath := filepath.Join(b.uploadDir, photo.FileUniqueId+".jpg")
	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return localPath, nil
}

func (b *Bot) render(tg *gotgbot.Bot, ctx *ext.Context, replies []bot.Reply) error {
	chatID := ctx.EffectiveChat.Id
	for _, reply := range replies {
		if err := b.send(tg, ctx, chatID, reply); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) send(tg *gotgbot.Bot, ctx *ext.Context, chatID int64, reply bot.Reply) error {
	if reply.Edit && ctx.EffectiveMessage != nil {
		_, _, err := ctx.EffectiveMessage.EditText(tg, reply.Text, &gotgbot.EditMessageTextOpts{
			ReplyMarkup: inlineMarkup(reply.Inline),
		})
		return err
	}

	switch {
	case len(reply.Photos) == 1:
		_, err := tg.SendPhoto(chatID, gotgbot.InputFileByURL(reply.Photos[0]), &gotgbot.SendPhotoOpts{
			Caption:     reply.Text,
			ReplyMarkup: replyMarkup(reply),
		})
		return err
	case len(reply.Photos) > 1:
		media := make([]gotgbot.InputMedia, 0, len(reply.Photos))
		for i, url := range reply.Photos {
			photo := gotgbot.InputMediaPhoto{Media: gotgbot.InputFileByURL(url)}
			if i == 0 {
				photo.Caption = reply.Text
			}
			media = append(media, photo)
		}
		_, err := tg.SendMediaGroup(chatID, media, nil)
		return err
	default:
		_, err := tg.SendMessage(chatID, reply.Text, &gotgbot.SendMessageOpts{
			ReplyMarkup: replyMarkup(reply),
		})
		return err
	}
}

func replyMarkup(reply bot.Reply) gotgbot.ReplyMarkup {
	if len(reply.Inline) > 0 {
		return inlineMarkup(reply.Inline)
	}
	if len(reply.Keyboard) > 0 {
		rows := make([][]gotgbot.KeyboardButton, 0, len(reply.Keyboard))
		for _, row := range reply.Keyboard {
			buttons := make([]gotgbot.KeyboardButton, 0, len(row))
			for _, label := range row {
				buttons = append(buttons, gotgbot.KeyboardButton{Text: label})
			}
			rows = append(rows, buttons)
		}
		return gotgbot.ReplyKeyboardMarkup{
			Keyboard:        rows,
			OneTimeKeyboard: true,
			ResizeKeyboard:  true,
		}
	}
	return nil
}

func inlineMarkup(rows [][]bot.Button) gotgbot.InlineKeyboardMarkup {
	keyboard := make([][]gotgbot.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]gotgbot.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, gotgbot.InlineKeyboardButton{Text: btn.Text, CallbackData: btn.Data})
		}
		keyboard = append(keyboard, buttons)
	}
	return gotgbot.InlineKeyboardMarkup{InlineKeyboard: keyboard}
}
