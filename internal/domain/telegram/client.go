package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
type Client interface {
	SendMessage(recipientChatID string, text string, options *telebot.SendOptions) error
}
