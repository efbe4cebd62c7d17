package warehouse

import "coldstore/internal/pkg/errs"

// Stats holds the monotonic activity counters. They only move forward and
// only as a side effect of a successful registration or order execution.
type Stats struct {
	inboundRegistrations int
	outboundDispatches   int
	storageMoves         int
}

// RestoreStats rebuilds counters from persisted state.
func RestoreStats(inboundRegistrations, outboundDispatches, storageMoves int) (Stats, error) {
	if inboundRegistrations < 0 {
		return Stats{}, errs.NewValueIsInvalidError("inboundRegistrations")
	}
	if outboundDispatches < 0 {
		return Stats{}, errs.NewValueIsInvalidError("outboundDispatches")
	}
	if storageMoves < 0 {
		return Stats{}, errs.NewValueIsInvalidError("storageMoves")
	}
	return Stats{
		inboundRegistrations: inboundRegistrations,
		outboundDispatches:   outboundDispatches,
		storageMoves:         storageMoves,
	}, nil
}

func (s Stats) InboundRegistrations() int { return s.inboundRegistrations }

func (s Stats) OutboundDispatches() int { return s.outboundDispatches }

func (s Stats) StorageMoves() int { return s.storageMoves }
