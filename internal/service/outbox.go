package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fiadoapp/backend/internal/entity"
	"github.com/fiadoapp/backend/pkg/logger"
)

// SendStatement queues an account statement for the client. The message body
// is rendered at delivery time so it reflects the ledger as of the send, not
// as of the request.
func (s *Service) SendStatement(ctx context.Context, clientID uuid.UUID) (entity.Notification, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Notification{}, err
	}

	client, err := s.repo.ClientByID(ctx, user.ID, clientID)
	if err != nil {
		return entity.Notification{}, fmt.Errorf("get client %s: %w", clientID, err)
	}

	n := entity.Notification{
		ID:          uuid.Must(uuid.NewV4()),
		ClientID:    client.ID,
		Kind:        entity.NotificationKindManualStatement,
		Destination: destination(client),
		Status:      entity.NotificationStatusPending,
		CreatedAt:   time.Now(),
	}

	n, err = s.repo.CreateNotification(ctx, n)
	if err != nil {
		return entity.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	return n, nil
}

// DrainNotifications delivers one batch of pending outbox rows. A failure on
// one row is recorded on that row and does not stop the batch. Runs on the
// background job interval.
func (s *Service) DrainNotifications(ctx context.Context) error {
	pending, err := s.repo.PendingNotifications(ctx, s.batchSize)
	if err != nil {
		return fmt.Errorf("get pending notifications: %w", err)
	}

	for _, n := range pending {
		s.deliver(ctx, n)
	}

	return nil
}

func (s *Service) deliver(ctx context.Context, n entity.Notification) {
	ctx = logger.WithClientID(ctx, n.ClientID)

	body, err := s.render(ctx, n)
	if err == nil {
		err = s.sender.Send(ctx, n.Destination, body)
	}

	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("deliver notification: %s", err))

		if markErr := s.repo.MarkNotificationFailed(ctx, n.ID, err.Error()); markErr != nil {
			slog.ErrorContext(ctx, fmt.Sprintf("mark notification failed: %s", markErr))
		}

		return
	}

	if err := s.repo.MarkNotificationSent(ctx, n.ID, body); err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("mark notification sent: %s", err))
	}
}

// render builds the message body from current ledger state. The outbox row
// only pins what must not drift: the kind, the destination and, for payments,
// the paid amount.
func (s *Service) render(ctx context.Context, n entity.Notification) (string, error) {
	switch n.Kind {
	case entity.NotificationKindNewCredit:
		if !n.CreditID.Valid {
			return "", fmt.Errorf("%w: notification %s has no credit", entity.ErrInvalidArgument, n.ID)
		}

		credit, client, err := s.repo.CreditWithClient(ctx, n.CreditID.UUID)
		if err != nil {
			return "", fmt.Errorf("get credit %s: %w", n.CreditID.UUID, err)
		}

		return newCreditMessage(client, credit), nil

	case entity.NotificationKindPaymentReceived:
		if !n.Amount.Valid {
			return "", fmt.Errorf("%w: notification %s has no amount", entity.ErrInvalidArgument, n.ID)
		}

		if n.CreditID.Valid {
			credit, client, err := s.repo.CreditWithClient(ctx, n.CreditID.UUID)
			if err != nil {
				return "", fmt.Errorf("get credit %s: %w", n.CreditID.UUID, err)
			}

			return paymentReceivedMessage(client, credit.Concept, n.Amount.Decimal, credit.Balance), nil
		}

		// General payment: report the remaining debt across the account.
		client, credits, err := s.repo.ClientWithCredits(ctx, n.ClientID)
		if err != nil {
			return "", fmt.Errorf("get client %s: %w", n.ClientID, err)
		}

		remaining := decimal.Zero
		for _, c := range credits {
			remaining = remaining.Add(c.Balance)
		}

		return paymentReceivedMessage(client, "Abono a la cuenta", n.Amount.Decimal, remaining), nil

	case entity.NotificationKindManualStatement:
		client, credits, err := s.repo.ClientWithCredits(ctx, n.ClientID)
		if err != nil {
			return "", fmt.Errorf("get client %s: %w", n.ClientID, err)
		}

		return statementMessage(client, credits), nil

	default:
		return "", fmt.Errorf("%w: unknown notification kind %q", entity.ErrInvalidArgument, n.Kind)
	}
}

// enqueueNotification is best-effort: the ledger mutation that triggered it
// has already committed, so a failed insert is logged, not propagated.
func (s *Service) enqueueNotification(
	ctx context.Context,
	client entity.Client,
	kind entity.NotificationKind,
	creditID uuid.NullUUID,
	amount decimal.NullDecimal,
) {
	n := entity.Notification{
		ID:          uuid.Must(uuid.NewV4()),
		ClientID:    client.ID,
		CreditID:    creditID,
		Kind:        kind,
		Destination: destination(client),
		Amount:      amount,
		Status:      entity.NotificationStatusPending,
		CreatedAt:   time.Now(),
	}

	if _, err := s.repo.CreateNotification(ctx, n); err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("enqueue %s notification for client %s: %s", kind, client.ID, err))
	}
}

func destination(client entity.Client) string {
	if client.WhatsappNumber != "" {
		return client.WhatsappNumber
	}

	return client.Email
}
