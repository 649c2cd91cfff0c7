package cache

import (
	"context"
	"errors"
	"time"
)

// ErrEntryNotFound is returned by [Store.Get] when no fresh entry exists for the key.
var ErrEntryNotFound = errors.New("cache entry not found")

// ErrStoreUnavailable wraps infrastructure failures of the backing store.
var ErrStoreUnavailable = errors.New("cache store unavailable")

type tagKind uint8

const (
	tagEvents tagKind = iota
	tagEvent
	tagParticipants
	tagUsers
	tagUser
)

// Tag is a closed set of invalidation labels. Construct values through
// [Events], [Event], [Participants], [Users], and [User] — the closed
// constructor set is what keeps invalidation tables exhaustive and free of
// typo-class bugs that stringly-typed tags invite.
type Tag struct {
	kind tagKind
	uid  string
}

// Events groups every cached event list, across all identities.
func Events() Tag { return Tag{kind: tagEvents} }

// Event groups cached reads of a single event by uid.
func Event(uid string) Tag { return Tag{kind: tagEvent, uid: uid} }

// Participants groups every cached participant list. Deliberately
// coarse-grained: one tag covers all events, bounding tag cardinality.
func Participants() Tag { return Tag{kind: tagParticipants} }

// Users groups cached user lists.
func Users() Tag { return Tag{kind: tagUsers} }

// User groups cached reads of a single user by uid.
func User(uid string) Tag { return Tag{kind: tagUser, uid: uid} }

// String renders the canonical wire form of the tag.
func (t Tag) String() string {
	switch t.kind {
	case tagEvents:
		return "events"
	case tagEvent:
		return "event-" + t.uid
	case tagParticipants:
		return "participants"
	case tagUsers:
		return "users"
	case tagUser:
		return "user-" + t.uid
	}
	return "unknown"
}

// Store is the process-wide shared cache behind the engine's read path.
// Implementations must be safe under concurrent use; last write wins and
// invalidation is monotonic. No single request owns the store.
type Store interface {
	// Get returns the stored value for key, or ErrEntryNotFound when the
	// entry is missing, expired, or was invalidated by tag.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, associated with every tag in tags, fresh
	// for ttl. A ttl <= 0 must not store anything.
	Set(ctx context.Context, key string, value []byte, tags []Tag, ttl time.Duration) error

	// Invalidate drops every entry carrying any of the given tags,
	// regardless of key. Entries tagged only with other tags are untouched.
	Invalidate(ctx context.Context, tags ...Tag) error
}
