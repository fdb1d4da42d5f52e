package bundle

import "github.com/svpv/rpmss/errs"

// collisionTracker tracks entry keys during encoding and detects hash
// collisions: two different entry names hashing to the same uint64 key.
// A collision, once detected, is resolved by writing every entry's
// original name into the bundle's collision-names payload instead of
// failing the encode.
type collisionTracker struct {
	keyToName   map[uint64]string
	names       []string // parallel to the encoder's entry order
	hasCollision bool
}

func newCollisionTracker() *collisionTracker {
	return &collisionTracker{keyToName: make(map[uint64]string)}
}

// trackKey records an entry added by an explicit numeric key (no name
// available). A repeat of the same key is always a collision, since
// there is no name to disambiguate it with.
func (t *collisionTracker) trackKey(key uint64) error {
	if _, exists := t.keyToName[key]; exists {
		return errs.ErrHashCollision
	}
	t.keyToName[key] = ""
	t.names = append(t.names, "")
	return nil
}

// trackName records an entry added by name, hashed to key. A repeat of
// the same (key, name) pair is rejected as a duplicate entry; a repeat
// of key with a different name sets the collision flag so the encoder
// writes out original names, rather than failing.
func (t *collisionTracker) trackName(name string, key uint64) error {
	if name == "" {
		return errs.ErrEmptyEntryName
	}
	if existing, exists := t.keyToName[key]; exists {
		if existing == name {
			return errs.ErrEntryAlreadyAdded
		}
		t.hasCollision = true
	}
	t.keyToName[key] = name
	t.names = append(t.names, name)
	return nil
}

func (t *collisionTracker) hasAnyCollision() bool {
	return t.hasCollision
}

// orderedNames returns the tracked names in entry order, "" for entries
// added via trackKey.
func (t *collisionTracker) orderedNames() []string {
	return t.names
}
