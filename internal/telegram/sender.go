package telegram

import (
	"context"

	"github.com/dwikikusuma/shopbot/internal/bot"
)

// Sender adapts Client to the bot.Sender boundary.
type Sender struct {
	client *Client
}

func NewSender(client *Client) *Sender {
	return &Sender{client: client}
}

func (s *Sender) SendMessage(ctx context.Context, chatID int64, text string, buttons [][]bot.Button) error {
	return s.client.SendMessage(ctx, chatID, text, toKeyboard(buttons))
}

func (s *Sender) SendPhoto(ctx context.Context, chatID int64, photo, caption string, buttons [][]bot.Button) error {
	return s.client.SendPhoto(ctx, chatID, photo, caption, toKeyboard(buttons))
}

func (s *Sender) AnswerCallback(ctx context.Context, callbackID string) error {
	return s.client.AnswerCallbackQuery(ctx, callbackID)
}

func toKeyboard(buttons [][]bot.Button) *InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}
	kb := &InlineKeyboardMarkup{
		InlineKeyboard: make([][]InlineKeyboardButton, 0, len(buttons)),
	}
	for _, row := range buttons {
		out := make([]InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			out = append(out, InlineKeyboardButton{Text: b.Label, CallbackData: b.Data})
		}
		kb.InlineKeyboard = append(kb.InlineKeyboard, out)
	}
	return kb
}
