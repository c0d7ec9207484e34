package auth

// Role names checked by the authorization gates. Role sets are flat; there is
// no hierarchy, membership is exact.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)
