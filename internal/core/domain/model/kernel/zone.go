package kernel

import (
	"fmt"

	"coldstore/internal/pkg/errs"
)

// Zone identifies one of the three physical areas a box can occupy.
//
// Inbound and Outbound hold boxes at dense positions (the lowest unused
// positive integer in the zone); Storage is a fixed array of slots. A box is
// in exactly one zone at a time, addressed by (Zone, position).
type Zone int

const (
	// UnknownZone is the invalid zero value.
	UnknownZone Zone = iota

	// ZoneInbound is the receiving area where boxes are first registered.
	ZoneInbound

	// ZoneStorage is the cold room with its fixed slot positions.
	ZoneStorage

	// ZoneOutbound is the staging area for boxes awaiting dispatch.
	ZoneOutbound
)

func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		UnknownZone:  "unknown",
		ZoneInbound:  "inbound",
		ZoneStorage:  "storage",
		ZoneOutbound: "outbound",
	}
}

// Validate returns an error unless the zone is one of Inbound, Storage,
// Outbound.
func (z Zone) Validate() error {
	switch z {
	case ZoneInbound, ZoneStorage, ZoneOutbound:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%d is not a valid zone", z))
	}
}

// String returns the lowercase wire name of the zone. It implements
// fmt.Stringer and is the form used in persisted state and API payloads.
func (z Zone) String() string {
	if s, ok := getZoneStrings()[z]; ok {
		return s
	}
	return "unknown"
}

// ZoneFromString parses a zone from its wire name.
func ZoneFromString(s string) (Zone, error) {
	for z, name := range getZoneStrings() {
		if name == s && z != UnknownZone {
			return z, nil
		}
	}
	return UnknownZone, errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%q is not a valid zone", s))
}

// SourceKey returns the "zone:position" form used to detect pending work
// orders that already reference a source box.
func SourceKey(zone Zone, position int) string {
	return fmt.Sprintf("%s:%d", zone, position)
}
