package role

import "fmt"

// Operation enumerates the role-gated engine operations.
type Operation int

const (
	// OpRegisterInbound registers a newly arrived box at Inbound.
	OpRegisterInbound Operation = iota + 1

	// OpCreateOrder creates a pending work order.
	OpCreateOrder

	// OpExecuteOrder executes a pending work order.
	OpExecuteOrder

	// OpDispatch moves a box from Outbound to the dispatched archive.
	OpDispatch

	// OpReportFailure files a manual failure report against a pending order.
	OpReportFailure

	// OpResolveAlert annotates and resolves alerts.
	OpResolveAlert

	// OpFixTemperature corrects a box temperature as an alert resolution.
	OpFixTemperature

	// OpCancelOrder removes a pending order without executing it. Granted to
	// nobody unless cancellation is enabled by configuration.
	OpCancelOrder

	// OpViewZones reads zone contents, the order queue, alerts and stats.
	OpViewZones

	// OpSearch locates a box by id or name across zones.
	OpSearch

	// OpRenameWarehouse updates the warehouse display name.
	OpRenameWarehouse
)

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		OpRegisterInbound: "register inbound box",
		OpCreateOrder:     "create order",
		OpExecuteOrder:    "execute order",
		OpDispatch:        "dispatch box",
		OpReportFailure:   "report failure",
		OpResolveAlert:    "resolve alert",
		OpFixTemperature:  "fix temperature",
		OpCancelOrder:     "cancel order",
		OpViewZones:       "view zones",
		OpSearch:          "search",
		OpRenameWarehouse: "rename warehouse",
	}
}

// String returns a human-readable operation name, used in failure messages.
func (o Operation) String() string {
	if s, ok := getOperationStrings()[o]; ok {
		return s
	}
	return "unknown operation"
}

// Policy is the static role → operation table. It is immutable after
// construction; every command handler authorizes against the same instance.
type Policy struct {
	grants            map[Role]map[Operation]bool
	supervisorEnabled bool
}

// NewPolicy builds the authorization table.
//
// With supervisorEnabled, the four-role superset applies: the supervisor
// creates orders (including Review orders) and manages alerts. Without it,
// order creation falls to the admin and Review orders are rejected, which
// reproduces the three-role variant.
//
// allowCancel opens the explicit order-cancellation path; by default no role
// may cancel and orders stay pending until executed.
func NewPolicy(supervisorEnabled, allowCancel bool) Policy {
	grants := map[Role]map[Operation]bool{
		Custodian: {
			OpRegisterInbound: true,
			OpDispatch:        true,
			OpViewZones:       true,
		},
		Admin: {
			OpViewZones:       true,
			OpSearch:          true,
			OpRenameWarehouse: true,
		},
		Operator: {
			OpExecuteOrder:  true,
			OpReportFailure: true,
			OpViewZones:     true,
		},
	}

	if supervisorEnabled {
		grants[Supervisor] = map[Operation]bool{
			OpCreateOrder:    true,
			OpResolveAlert:   true,
			OpFixTemperature: true,
			OpViewZones:      true,
		}
		if allowCancel {
			grants[Supervisor][OpCancelOrder] = true
		}
	} else {
		grants[Admin][OpCreateOrder] = true
		grants[Admin][OpResolveAlert] = true
		grants[Admin][OpFixTemperature] = true
		if allowCancel {
			grants[Admin][OpCancelOrder] = true
		}
	}

	return Policy{grants: grants, supervisorEnabled: supervisorEnabled}
}

// Authorize returns nil when the role may invoke the operation, otherwise an
// error wrapping ErrUnauthorized with a human-readable message.
func (p Policy) Authorize(r Role, op Operation) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrUnauthorized, err)
	}
	if !p.grants[r][op] {
		return fmt.Errorf("%w: %s may not %s", ErrUnauthorized, r, op)
	}
	return nil
}

// ReviewOrdersEnabled reports whether Review orders exist in this
// configuration. They are tied to the supervisor role.
func (p Policy) ReviewOrdersEnabled() bool {
	return p.supervisorEnabled
}
