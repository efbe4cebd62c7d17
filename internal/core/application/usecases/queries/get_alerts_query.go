package queries

import (
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var ErrGetAlertsQueryIsNotConstructed = errors.New(
	"GetAlertsQuery must be created via NewGetAlertsQuery constructor",
)

// GetAlertsQuery retrieves the active alert feed.
type GetAlertsQuery struct {
	actor role.Role

	guard guard.ConstructorGuard
}

// NewGetAlertsQuery creates a query for the alert feed.
func NewGetAlertsQuery(actor role.Role) (GetAlertsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAlertsQuery{}, err
	}

	return GetAlertsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetAlertsQueryIsNotConstructed)
}

// Actor returns the role invoking the query.
func (q GetAlertsQuery) Actor() role.Role {
	return q.actor
}

// AlertResponse represents one active alert.
type AlertResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Reason      *string `json:"reason"`
}

// GetAlertsQueryResponse lists the active alerts in feed order.
type GetAlertsQueryResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}
