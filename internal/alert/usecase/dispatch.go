package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ujenzi-notify/internal/alert"
	deliveryRepo "ujenzi-notify/internal/deliverylog/repository"
	"ujenzi-notify/internal/model"
)

// dispatchTimeout bounds the gateway call plus delivery logging once the
// primary record is safe. The caller's deadline no longer applies past
// that point.
const dispatchTimeout = 30 * time.Second

// dispatch sends one formatted message to the resolved recipients and
// appends a delivery attempt. Delivery is best-effort: gateway and
// log-append failures are absorbed and reported to diagnostics, never
// returned. alertID is nil for ad-hoc status updates.
func (uc *implUseCase) dispatch(ctx context.Context, alertID *string, msg string, recipients []model.Recipient) alert.DeliveryResult {
	if len(recipients) == 0 {
		return alert.DeliveryResult{State: alert.DeliveryStateNoRecipients}
	}

	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	defer cancel()

	numbers := make([]string, len(recipients))
	for i, rc := range recipients {
		numbers[i] = rc.PhoneNumber
	}

	outcome, sendErr := uc.smsClient.Send(dctx, numbers, msg)

	state := alert.DeliveryStateDelivered
	opts := deliveryRepo.CreateOptions{
		AlertID:    alertID,
		Message:    msg,
		Recipients: numbers,
		Status:     model.DeliveryStatusDelivered,
	}
	if sendErr != nil || !outcome.Accepted {
		state = alert.DeliveryStateFailed
		opts.Status = model.DeliveryStatusFailed
		if sendErr != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.dispatch.Send: %v", sendErr)
			errMsg := sendErr.Error()
			opts.ErrorMessage = &errMsg
		}
	}
	for _, rs := range outcome.Recipients {
		opts.Statuses = append(opts.Statuses, model.RecipientStatus{
			Number:     rs.Number,
			Status:     rs.Status,
			StatusCode: rs.StatusCode,
			Cost:       rs.Cost,
			MessageID:  rs.MessageID,
		})
	}
	if len(outcome.Raw) > 0 {
		opts.RawResponse = outcome.Raw
	}

	attempt, err := uc.deliveryRepo.Create(dctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.dispatch.deliveryRepo.Create: %v", err)
		uc.reportStorageFailure(dctx, err)
		return alert.DeliveryResult{State: state, Recipients: len(numbers)}
	}

	uc.archiveRaw(dctx, attempt.ID, outcome.Raw)

	return alert.DeliveryResult{
		State:      state,
		AttemptID:  attempt.ID,
		Recipients: len(numbers),
	}
}

// reportStorageFailure posts a log-append failure to the ops webhook.
// Best-effort only; the dispatch result is unaffected.
func (uc *implUseCase) reportStorageFailure(ctx context.Context, cause error) {
	if uc.discord == nil {
		return
	}
	if err := uc.discord.SendError(ctx, "Delivery log append failed",
		"A delivery attempt could not be recorded; the alert itself is persisted.", cause); err != nil {
		uc.l.Warnf(ctx, "internal.alert.usecase.reportStorageFailure.SendError: %v", err)
	}
}

// archiveRaw stores the gateway's raw response payload for audit.
func (uc *implUseCase) archiveRaw(ctx context.Context, attemptID string, raw json.RawMessage) {
	if uc.archive == nil || len(raw) == 0 {
		return
	}
	key := fmt.Sprintf("gateway-responses/%s.json", attemptID)
	if err := uc.archive.Put(ctx, key, raw, "application/json"); err != nil {
		uc.l.Warnf(ctx, "internal.alert.usecase.archiveRaw.Put: %v", err)
	}
}
