package queries

import (
	"errors"
	"strings"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/errs"
	"coldstore/internal/pkg/guard"
)

var ErrFindBoxQueryIsNotConstructed = errors.New(
	"FindBoxQuery must be created via NewFindBoxQuery constructor",
)

// FindBoxQuery locates a box by its auto id or exact name.
type FindBoxQuery struct {
	actor role.Role
	term  string

	guard guard.ConstructorGuard
}

// NewFindBoxQuery creates a search query for the given term.
func NewFindBoxQuery(actor role.Role, term string) (FindBoxQuery, error) {
	if err := actor.Validate(); err != nil {
		return FindBoxQuery{}, err
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return FindBoxQuery{}, errs.NewValueIsRequiredError("term")
	}

	return FindBoxQuery{
		actor: actor,
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindBoxQuery) Validate() error {
	return q.guard.Validate(ErrFindBoxQueryIsNotConstructed)
}

// Actor returns the role invoking the query.
func (q FindBoxQuery) Actor() role.Role {
	return q.actor
}

// Term returns the trimmed search term.
func (q FindBoxQuery) Term() string {
	return q.term
}

// FindBoxQueryResponse reports where the box was found. Found is false
// when no zone holds a matching box.
type FindBoxQueryResponse struct {
	Found    bool   `json:"found"`
	Zone     string `json:"zone,omitempty"`
	Position int    `json:"position,omitempty"`
	AutoID   string `json:"autoId,omitempty"`
	Name     string `json:"name,omitempty"`
}
