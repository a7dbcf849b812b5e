package telegram

import (
	"fmt"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// MessageError wraps any failure to deliver a message to the chat.
type MessageError struct {
	Err error
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("не удалось отправить сообщение: %v", e.Err)
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

// Notifier delivers messages to the single configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID string
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{client: client, chatID: chatID, logger: logger}
}

// Notify sends message to the chat. Delivery failures are returned as *MessageError.
func (n *Notifier) Notify(message string) error {
	err := n.client.SendMessage(n.chatID, message, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	if err != nil {
		n.logger.WithField("chat_id", n.chatID).WithError(err).Error("Failed to send message")
		return &MessageError{Err: err}
	}
	n.logger.Debugf("Сообщение: \"%s\" отправлено!", message)
	return nil
}
