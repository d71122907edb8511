package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	admin := Identity{UserID: 1, Role: RoleAdmin}
	customer := Identity{UserID: 2, Role: RoleCustomer}
	anonymous := Identity{}

	cases := []struct {
		name  string
		ident Identity
		op    Operation
		want  bool
	}{
		{"AdminManagesProducts", admin, OpProductManage, true},
		{"AdminManagesCustomers", admin, OpCustomerManage, true},
		{"AdminViewsReports", admin, OpReportView, true},
		{"AdminAcceptsOrders", admin, OpOrderAccept, true},
		{"AdminDeliversOrders", admin, OpOrderDeliver, true},
		{"AdminHasNoCart", admin, OpCartUse, false},
		{"AdminCannotPlaceOrders", admin, OpOrderPlace, false},
		{"AdminCannotReceiveOrders", admin, OpOrderReceive, false},

		{"CustomerUsesCart", customer, OpCartUse, true},
		{"CustomerPlacesOrders", customer, OpOrderPlace, true},
		{"CustomerReceivesOrders", customer, OpOrderReceive, true},
		{"CustomerCannotManageProducts", customer, OpProductManage, false},
		{"CustomerCannotManageCustomers", customer, OpCustomerManage, false},
		{"CustomerCannotViewReports", customer, OpReportView, false},
		{"CustomerCannotAcceptOrders", customer, OpOrderAccept, false},

		{"AnonymousDeniedEverywhere", anonymous, OpCartUse, false},
		{"UnknownOperationDenied", admin, Operation("report:export"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allowed(tc.ident, tc.op))
		})
	}
}

func TestIdentityHelpers(t *testing.T) {
	assert.True(t, Identity{UserID: 1, Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{UserID: 2, Role: RoleCustomer}.IsAdmin())
	assert.True(t, Identity{}.IsAnonymous())
	assert.False(t, Identity{UserID: 2, Role: RoleCustomer}.IsAnonymous())
}
