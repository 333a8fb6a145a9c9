package bot

// EventKind tags the two inbound event shapes. Handlers consume the
// normalized Event and never inspect provider payloads.
type EventKind int

const (
	// EventCommand is a slash command typed in chat, e.g. "/menu".
	EventCommand EventKind = iota
	// EventCallback is a button press carrying an opaque token, either a
	// bare verb ("cart") or "verb:argument" ("add:A12").
	EventCallback
)

type Event struct {
	Kind EventKind

	// Name and Args are set for commands.
	Name string
	Args string

	// Token and CallbackID are set for callbacks. CallbackID is the
	// provider handle used to acknowledge the press.
	Token      string
	CallbackID string

	UserID int64
	ChatID int64
}

// Arg returns the part of a callback token after the verb prefix, so
// "add:A12" routed via prefix "add:" yields "A12".
func (e Event) Arg(prefix string) string {
	if len(e.Token) <= len(prefix) {
		return ""
	}
	return e.Token[len(prefix):]
}
