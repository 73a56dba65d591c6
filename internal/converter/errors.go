package converter

import "errors"

// ErrMissingAssociation means a foreign key did not resolve to a loaded row.
// The store enforces these references, so this indicates an inconsistent store.
var ErrMissingAssociation = errors.New("missing association")
