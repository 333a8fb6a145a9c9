package bot

import (
	"context"
	"sort"
	"strings"
)

type HandlerFunc func(ctx context.Context, ev Event) (*Response, error)

// Router maps normalized events to handlers. All registration happens at
// startup; Route is read-only after that.
//
// Commands match on exact name. Callbacks match on exact token first,
// then on the longest registered verb prefix. An event nothing matches
// is not an error: the dispatcher drops it.
type Router struct {
	commands map[string]HandlerFunc
	tokens   map[string]HandlerFunc
	prefixes []prefixRoute
}

type prefixRoute struct {
	prefix  string
	handler HandlerFunc
}

func NewRouter() *Router {
	return &Router{
		commands: make(map[string]HandlerFunc),
		tokens:   make(map[string]HandlerFunc),
	}
}

// Command registers a handler for a slash command, name without "/".
func (r *Router) Command(name string, h HandlerFunc) {
	r.commands[name] = h
}

// Callback registers a handler for an exact callback token.
func (r *Router) Callback(token string, h HandlerFunc) {
	r.tokens[token] = h
}

// CallbackPrefix registers a handler for tokens starting with prefix,
// e.g. "add:" matches "add:A12". Exact token routes win over prefixes;
// among prefixes the longest match wins.
func (r *Router) CallbackPrefix(prefix string, h HandlerFunc) {
	r.prefixes = append(r.prefixes, prefixRoute{prefix: prefix, handler: h})
	sort.SliceStable(r.prefixes, func(i, j int) bool {
		return len(r.prefixes[i].prefix) > len(r.prefixes[j].prefix)
	})
}

func (r *Router) Route(ev Event) (HandlerFunc, bool) {
	switch ev.Kind {
	case EventCommand:
		h, ok := r.commands[ev.Name]
		return h, ok
	case EventCallback:
		if h, ok := r.tokens[ev.Token]; ok {
			return h, true
		}
		for _, pr := range r.prefixes {
			if strings.HasPrefix(ev.Token, pr.prefix) {
				return pr.handler, true
			}
		}
	}
	return nil, false
}
