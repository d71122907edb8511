package access

// Operation names a permission-gated action.
type Operation string

const (
	OpProductManage  Operation = "product:manage"
	OpCustomerManage Operation = "customer:manage"
	OpReportView     Operation = "report:view"
	OpCartUse        Operation = "cart:use"
	OpOrderPlace     Operation = "order:place"
	OpOrderAccept    Operation = "order:accept"
	OpOrderDeliver   Operation = "order:deliver"
	OpOrderReceive   Operation = "order:receive"
)

// policy is the role × operation permission table. Ownership checks
// (acting on your own cart entry or order) stay in the services; this
// table only answers whether a role may attempt the operation at all.
var policy = map[Operation]map[Role]bool{
	OpProductManage:  {RoleAdmin: true},
	OpCustomerManage: {RoleAdmin: true},
	OpReportView:     {RoleAdmin: true},
	OpCartUse:        {RoleCustomer: true},
	OpOrderPlace:     {RoleCustomer: true},
	OpOrderAccept:    {RoleAdmin: true},
	OpOrderDeliver:   {RoleAdmin: true},
	OpOrderReceive:   {RoleCustomer: true},
}

// Allowed reports whether the identity's role may attempt the operation.
func Allowed(ident Identity, op Operation) bool {
	roles, ok := policy[op]
	if !ok {
		return false
	}
	return roles[ident.Role]
}
