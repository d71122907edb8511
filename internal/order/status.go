package order

import "mirastore-be/internal/access"

// transitions is the admin side of the status lifecycle. Customers have a
// single move (accepted → received on their own order), handled below.
var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusDelivered},
	StatusAccepted: {StatusDelivered},
}

// CanTransition reports whether the identity may move the order from its
// current status to next. Anything not explicitly allowed is rejected.
func CanTransition(ident access.Identity, o *Order, next Status) bool {
	if ident.IsAdmin() {
		for _, s := range transitions[o.Status] {
			if s == next {
				return true
			}
		}
		return false
	}

	// Customers may only confirm receipt of their own accepted order.
	return ident.Role == access.RoleCustomer &&
		o.UserID == ident.UserID &&
		o.Status == StatusAccepted &&
		next == StatusReceived
}
