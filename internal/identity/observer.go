package identity

import "sync"

// SessionFunc receives the current user on every session change; nil
// means signed out.
type SessionFunc func(user *User)

// SessionObserver exposes the current session to the rest of the
// system. Until the first notification arrives it reports a loading
// state, and consumers must not treat the session as absent.
type SessionObserver struct {
	mu      sync.Mutex
	loading bool
	current *User
	subs    []SessionFunc
}

func NewSessionObserver() *SessionObserver {
	return &SessionObserver{loading: true}
}

// Loading reports whether the first session notification is still
// pending.
func (o *SessionObserver) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// Current returns the authenticated user, or nil when signed out or
// still loading.
func (o *SessionObserver) Current() *User {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Subscribe registers a callback for session changes. Must be called
// during wiring, before notifications start.
func (o *SessionObserver) Subscribe(fn SessionFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.subs = append(o.subs, fn)
}

// Notify records a session change and fans it out to subscribers. The
// first call ends the loading state, whatever the user value.
func (o *SessionObserver) Notify(user *User) {
	o.mu.Lock()
	o.loading = false
	o.current = user
	subs := make([]SessionFunc, len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}
