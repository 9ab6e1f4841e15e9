package alert

import (
	"ujenzi-notify/internal/model"
	"ujenzi-notify/pkg/paginator"
)

// Delivery branch of one dispatch. Exactly one applies per dispatch and
// it is terminal; there is no retry transition.
const (
	DeliveryStateDelivered    = "delivered"
	DeliveryStateFailed       = "failed"
	DeliveryStateNoRecipients = "no_recipients"
)

// CreateAlertInput is the request to create and dispatch an alert.
type CreateAlertInput struct {
	ProjectID string
	Category  string
	Body      string
}

// DeliveryResult reports which delivery branch a dispatch took. A failed
// delivery never fails the dispatch itself; callers surface it separately.
type DeliveryResult struct {
	State      string
	AttemptID  string
	Recipients int
}

// CreateAlertOutput carries the persisted alert and the delivery result.
type CreateAlertOutput struct {
	Alert    model.Alert
	Delivery DeliveryResult
}

// DispatchUpdateInput is the request for an ad-hoc status message sent
// outside the Alert entity.
type DispatchUpdateInput struct {
	ProjectID string
	Body      string
}

// DispatchUpdateOutput carries the delivery result of a status update.
type DispatchUpdateOutput struct {
	Delivery DeliveryResult
}

type Filter struct {
	ProjectID string
	Category  string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Alerts    []model.Alert
	Paginator paginator.Paginator
}
