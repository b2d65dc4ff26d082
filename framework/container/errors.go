package container

// LookupError is returned when an identity is resolved (directly, or
// indirectly through a dependency binding) but has no registration.
type LookupError struct {
	// Identity is the registry key that had no entry.
	Identity Identity
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	// Example: container: no service registered for [*services.UserService]
	return "container: no service registered for [" + e.Identity.String() + "]"
}

// WrongTypeError is returned by the generic Resolve when an identity is
// registered but the stored instance is not assignable to the requested type.
type WrongTypeError struct {
	// Identity is the registry key requested.
	Identity Identity

	// GotType is the type of the instance actually stored.
	GotType string
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	// Example: container: [services.Logger] resolved to wrong type (*services.UserService)
	return "container: [" + e.Identity.String() + "] resolved to wrong type (" + e.GotType + ")"
}
