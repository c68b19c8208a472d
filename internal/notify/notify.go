// Package notify delivers new-request notifications. The log notifier is
// the default; Kafka delivery is enabled by configuration.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aminebt/khadamat/internal/models"
)

type Notifier interface {
	RequestReceived(ctx context.Context, request models.Request) error
}

// Summary renders the one-line message sent for a new request.
func Summary(r models.Request) string {
	s := fmt.Sprintf("request #%d from %s: %s x%d (%s)", r.ID, r.Username, r.Service, r.Quantity, r.Link)
	if r.Notes != "" {
		s += ", notes: " + r.Notes
	}
	return s
}

type LogNotifier struct {
	Log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{Log: log}
}

func (n *LogNotifier) RequestReceived(ctx context.Context, request models.Request) error {
	n.Log.Info("new request", "id", request.ID, "summary", Summary(request))
	return nil
}
