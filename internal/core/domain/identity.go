package domain

// IdentitySource tags where a resolved identity came from.
type IdentitySource string

const (
	// SourceStatic marks demo accounts from the built-in table. They have no
	// persisted record and therefore no stored identifier.
	SourceStatic IdentitySource = "static"
	// SourcePersisted marks accounts resolved from the user store.
	SourcePersisted IdentitySource = "persisted"
)

// Identity is the principal resolved for a login attempt. Name and Email are
// always non-empty; ID is set only for persisted identities.
type Identity struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	Source IdentitySource
}
