// events.go defines the event types for extension notifications.
//
// Separated from extension.go to isolate the event system. Events let
// extensions react to changes made elsewhere in the process (for example a
// config change made through the MCP server) without the originator knowing
// who is listening.
//
// Events are fire-and-forget notifications. Handlers observe after the fact
// and cannot veto the change.

package extension

import "github.com/jpl-au/pathkit/internal/log"

// EventType identifies the kind of event.
type EventType string

const (
	EventConfigChange EventType = "config:change"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
}

// ConfigChangeEvent is fired after a configuration key is saved and the
// Context has been reloaded.
type ConfigChangeEvent struct {
	Key   string
	Value string
	Scope string
}

func (e ConfigChangeEvent) EventType() EventType { return EventConfigChange }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}

// Fire notifies every registered EventHandler. Handler errors are logged
// and otherwise ignored.
func Fire(ctx Context, e Event) {
	for _, ext := range All() {
		if h, ok := ext.(EventHandler); ok {
			if err := h.HandleEvent(ctx, e); err != nil {
				log.Event("event:error", "error").
					Detail("ext", ext.Name()).
					Detail("event", string(e.EventType())).
					Write(err)
			}
		}
	}
}
