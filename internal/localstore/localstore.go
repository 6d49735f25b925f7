// Package localstore is the client's durable key-value cache. It
// replaces the browser's localStorage: two advisory keys (a logged-in
// marker and a cached profile) that hint whether silent
// re-authentication is worth attempting. Nothing in here is ever
// authoritative; the server overwrites it on every successful fetch.
package localstore

// Well-known keys.
const (
	KeyLoggedIn = "taday_logged_in"
	KeyUser     = "taday_user"
)

// Store is the persistence port. Implementations must treat Get of a
// missing key as (value "", ok false, nil error), not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
