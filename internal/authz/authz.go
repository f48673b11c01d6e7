// Package authz decides which tasks a request may see or touch.
//
// Every task route classifies its caller into one of three access states,
// derived from the optional Authorization header: no token, a token that
// verified to a user id, or a token that failed verification. Tasks created
// before authentication existed carry no owner, and old clients still call
// these routes bare. An absent or broken token does not reject the request,
// it widens it: those callers keep the original unrestricted behavior. Only
// a token that actually verifies narrows the request to the caller's own
// rows.
//
// All four task routes consume the same Policy; none re-derives the
// dispatch on its own.
package authz

// TokenState classifies the caller's bearer token.
type TokenState int

const (
	// NoToken means the Authorization header was absent or carried no
	// token segment.
	NoToken TokenState = iota
	// ValidToken means the token verified and yielded a user id.
	ValidToken
	// InvalidToken means a token was presented but failed verification.
	// Task routes treat it exactly like NoToken.
	InvalidToken
)

// Access is the outcome of token extraction for a single request.
type Access struct {
	State  TokenState
	UserID int64 // set only when State is ValidToken
}

// Anonymous is the access of a request that presented no token.
func Anonymous() Access { return Access{State: NoToken} }

// User is the access of a request whose token verified to id.
func User(id int64) Access { return Access{State: ValidToken, UserID: id} }

// Invalid is the access of a request whose token failed verification.
func Invalid() Access { return Access{State: InvalidToken} }

// WriteScope restricts update and delete to rows the caller may touch:
// rows owned by OwnerID, plus unowned rows when IncludeUnowned is set.
type WriteScope struct {
	OwnerID        int64
	IncludeUnowned bool
}

// Policy is the task access policy shared by the list, create, update and
// delete routes.
type Policy struct {
	// LegacyWritable keeps tasks without an owner writable by
	// authenticated callers. Anonymous and invalid-token callers can
	// always write them; this flag only governs signed-in users.
	LegacyWritable bool
}

// DefaultPolicy preserves the pre-authentication behavior for unowned rows.
func DefaultPolicy() Policy { return Policy{LegacyWritable: true} }

// ReadFilter returns the owner a listing must be narrowed to, or nil for
// the full unfiltered set. Verified callers see only their own tasks;
// unowned rows are not included for them.
func (p Policy) ReadFilter(a Access) *int64 {
	if a.State == ValidToken {
		id := a.UserID
		return &id
	}
	return nil
}

// CreateOwner returns the owner to stamp on a new task. Nil leaves the
// task unowned, which is what anonymous and invalid-token creation did
// before tokens existed.
func (p Policy) CreateOwner(a Access) *int64 {
	if a.State == ValidToken {
		id := a.UserID
		return &id
	}
	return nil
}

// WriteScope returns the restriction for update and delete. Nil means the
// caller may touch any row by id.
func (p Policy) WriteScope(a Access) *WriteScope {
	if a.State == ValidToken {
		return &WriteScope{OwnerID: a.UserID, IncludeUnowned: p.LegacyWritable}
	}
	return nil
}
