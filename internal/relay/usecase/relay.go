package usecase

import (
	"context"
	"time"

	deliveryRepo "ujenzi-notify/internal/deliverylog/repository"
	"ujenzi-notify/internal/model"
	"ujenzi-notify/internal/relay"
	"ujenzi-notify/pkg/sms"
)

func (uc *implUseCase) Send(ctx context.Context, ip relay.SendInput) (relay.SendOutput, error) {
	number, ok := sms.NormalizeNumber(ip.PhoneNumber)
	if !ok || ip.Message == "" {
		return relay.SendOutput{}, relay.ErrInvalidInput
	}

	outcome, sendErr := uc.smsClient.Send(ctx, []string{number}, ip.Message)

	opts := deliveryRepo.CreateOptions{
		Message:    ip.Message,
		Recipients: []string{number},
		Status:     model.DeliveryStatusDelivered,
	}
	if sendErr != nil || !outcome.Accepted {
		opts.Status = model.DeliveryStatusFailed
		if sendErr != nil {
			uc.l.Errorf(ctx, "internal.relay.usecase.Send.Send: %v", sendErr)
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

	attempt, logErr := uc.deliveryRepo.Create(ctx, opts)
	if logErr != nil {
		uc.l.Errorf(ctx, "internal.relay.usecase.Send.deliveryRepo.Create: %v", logErr)
	}

	if sendErr != nil || !outcome.Accepted {
		return relay.SendOutput{}, relay.ErrSendFailed
	}

	return relay.SendOutput{
		To:        number,
		Timestamp: time.Now().UTC(),
		Response:  outcome.Raw,
		LogID:     attempt.ID,
	}, nil
}
