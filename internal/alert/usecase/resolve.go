package usecase

import (
	"context"

	"ujenzi-notify/internal/model"
	"ujenzi-notify/pkg/sms"
)

// resolveRecipients maps the project's stakeholder list to dialable
// recipients. Stakeholders without a usable phone number are silently
// dropped; a partial recipient list is acceptable. Duplicate numbers are
// removed. Returns the recipients alongside the stakeholder IDs they were
// resolved from.
func (uc *implUseCase) resolveRecipients(ctx context.Context, sc model.Scope, p model.Project) ([]model.Recipient, []string, error) {
	if len(p.StakeholderIDs) == 0 {
		return nil, nil, nil
	}

	stakeholders, err := uc.projectRepo.ListStakeholders(ctx, sc, p.StakeholderIDs)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.resolveRecipients.ListStakeholders: %v", err)
		return nil, nil, err
	}

	seen := make(map[string]struct{}, len(stakeholders))
	var recipients []model.Recipient
	var ids []string
	for _, s := range stakeholders {
		if s.PhoneNumber == nil {
			continue
		}
		number, ok := sms.NormalizeNumber(*s.PhoneNumber)
		if !ok || !sms.IsPlausibleNumber(number) {
			continue
		}
		if _, dup := seen[number]; dup {
			continue
		}
		seen[number] = struct{}{}
		recipients = append(recipients, model.Recipient{
			Name:        s.FullName,
			PhoneNumber: number,
		})
		ids = append(ids, s.ID)
	}

	return recipients, ids, nil
}
