package model

// OrderStatus is the kitchen-to-table fulfillment stage of an order.
// It only ever moves forward: placed -> preparing -> ready -> served.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
)

var statusRank = map[OrderStatus]int{
	StatusPlaced:    0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusServed:    3,
}

// OrderAction is a status transition offered to the viewer.
type OrderAction struct {
	Label string
	To    OrderStatus
}

// ActionsFor returns the transitions a viewer with the given role may apply
// to an order in the given status. A chef moves placed orders to preparing
// or straight to ready; a waiter serves ready orders. Served is terminal and
// offers nothing to anyone.
func ActionsFor(status OrderStatus, role Role) []OrderAction {
	switch role {
	case RoleChef:
		switch status {
		case StatusPlaced:
			return []OrderAction{
				{Label: "Mark preparing", To: StatusPreparing},
				{Label: "Mark ready", To: StatusReady},
			}
		case StatusPreparing:
			return []OrderAction{{Label: "Mark ready", To: StatusReady}}
		}
	case RoleWaiter:
		if status == StatusReady {
			return []OrderAction{{Label: "Mark served", To: StatusServed}}
		}
	}
	return nil
}

// CanTransition reports whether the role may move an order from one status
// to another. It refuses backward moves outright, so a stale view can never
// replay an already-served order through this client.
func CanTransition(from, to OrderStatus, role Role) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok || toRank <= fromRank {
		return false
	}
	for _, a := range ActionsFor(from, role) {
		if a.To == to {
			return true
		}
	}
	return false
}
