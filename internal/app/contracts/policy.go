package contracts

// AuthorizationPolicy decides whether a role may perform an action. Both
// methods return nil on allow and an AuthorizationError on deny.
type AuthorizationPolicy interface {
	Authorize(role, action, resourceOwnerRef, callerRef string) error
	AuthorizeRole(role, action string) error
}
