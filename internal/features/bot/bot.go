// Package bot runs the companion Telegram bot that tells users the numeric
// ID they need for the site login form.
package bot

import (
	"context"
	"fmt"
	"html"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"portal-backend/internal/common/logger"
)

type Bot struct {
	bot     *bot.Bot
	siteURL string
	log     zerolog.Logger
}

// New connects to the Bot API with token. siteURL, when set, is linked in
// the reply.
func New(token, siteURL string, opts ...bot.Option) (*Bot, error) {
	b := &Bot{
		siteURL: siteURL,
		log:     logger.Component("bot"),
	}

	opts = append([]bot.Option{bot.WithDefaultHandler(b.defaultHandler)}, opts...)
	tgBot, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	b.bot = tgBot

	tgBot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, b.idHandler)
	tgBot.RegisterHandler(bot.HandlerTypeMessageText, "/id", bot.MatchTypeExact, b.idHandler)

	return b, nil
}

// Start long-polls until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	b.log.Info().Msg("Bot polling started")
	b.bot.Start(ctx)
}

func (b *Bot) idHandler(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	params := IDReply(update, b.siteURL)
	if params == nil {
		return
	}
	if _, err := tgBot.SendMessage(ctx, params); err != nil {
		b.log.Error().Err(err).Int64("chat_id", update.Message.Chat.ID).Msg("Failed to send reply")
	}
}

func (b *Bot) defaultHandler(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != models.ChatTypePrivate {
		return
	}
	b.idHandler(ctx, tgBot, update)
}

// IDReply builds the answer to /start and /id: the sender's numeric ID,
// ready to paste into the login form. It returns nil for updates without a
// message sender.
func IDReply(update *models.Update, siteURL string) *bot.SendMessageParams {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return nil
	}
	return &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      IDMessage(update.Message.From.ID, update.Message.From.FirstName, siteURL),
		ParseMode: models.ParseModeHTML,
	}
}

func IDMessage(userID int64, firstName, siteURL string) string {
	name := html.EscapeString(firstName)
	if name == "" {
		name = "کاربر"
	}

	text := fmt.Sprintf(
		"سلام %s 👋\n\n"+
			"شناسه عددی تلگرام شما:\n<code>%d</code>\n\n"+
			"این شناسه را در فرم ورود سایت وارد کنید تا کد تایید برایتان ارسال شود.",
		name, userID,
	)
	if siteURL != "" {
		text += fmt.Sprintf("\n\n🌐 %s", html.EscapeString(siteURL))
	}
	return text
}
