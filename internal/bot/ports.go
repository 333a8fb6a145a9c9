package bot

import "context"

type Button struct {
	Label string
	Data  string
}

// Response is what one handler produces for the acting user. A nil
// response means the event was consumed without a reply.
type Response struct {
	Text    string
	Photo   string
	Buttons [][]Button
}

// Sender delivers responses through the chat provider. Implemented by the
// telegram adapter.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, buttons [][]Button) error
	SendPhoto(ctx context.Context, chatID int64, photo, caption string, buttons [][]Button) error
	AnswerCallback(ctx context.Context, callbackID string) error
}
