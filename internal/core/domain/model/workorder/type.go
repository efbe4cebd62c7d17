package workorder

import (
	"fmt"

	"coldstore/internal/pkg/errs"
)

// Type classifies what fulfilling a work order does to its source box.
//
//	ToStorage  — move the box into a chosen free storage slot
//	ToOutbound — move the box to the next free outbound position
//	Review     — confirm the box is still present; no movement
//
// ToStorage and ToOutbound carry a target position; Review never does.
type Type int

const (
	// UnknownType is the invalid zero value.
	UnknownType Type = iota

	// TypeToStorage moves a box from Inbound or Storage into a storage slot.
	TypeToStorage

	// TypeToOutbound moves a box from Storage to the outbound staging area.
	TypeToOutbound

	// TypeReview asks the operator to confirm a storage box in place.
	TypeReview
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:    "unknown",
		TypeToStorage:  "to_storage",
		TypeToOutbound: "to_outbound",
		TypeReview:     "review",
	}
}

// Validate returns an error unless the type is one of the three order types.
func (t Type) Validate() error {
	switch t {
	case TypeToStorage, TypeToOutbound, TypeReview:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
}

// String returns the wire name of the type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// TypeFromString parses an order type from its wire name.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s && t != UnknownType {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not a valid order type", s))
}

// RequiresTarget reports whether orders of this type carry a target
// position.
func (t Type) RequiresTarget() bool {
	return t == TypeToStorage || t == TypeToOutbound
}
