package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dms-backend/internal/domain"
)

func requestSubmittedEvent(actor domain.Actor, doc *domain.Document, typ domain.RequestType) domain.NotificationEvent {
	return domain.NotificationEvent{
		Title:   fmt.Sprintf("Document %s Request", typ),
		Message: fmt.Sprintf("%s requested %s for '%s'", actor.Username, typ, doc.Title),
	}
}

// notifyAdmins delivers ev to every administrator. Delivery is best-effort:
// failures are logged and never reach the caller.
func (s *Service) notifyAdmins(ctx context.Context, ev domain.NotificationEvent) {
	admins, err := s.users.ListIDsByRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		s.log.ErrorContext(ctx, "list admins for notification", slog.String("error", err.Error()))
		return
	}
	if len(admins) == 0 {
		return
	}
	ev.Recipients = admins

	if err := s.notifier.Notify(ctx, ev.Recipients, ev.Title, ev.Message); err != nil {
		s.log.ErrorContext(ctx, "notify admins",
			slog.String("title", ev.Title),
			slog.Int("recipients", len(ev.Recipients)),
			slog.String("error", err.Error()),
		)
	}
}
