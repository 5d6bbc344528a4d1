package expiration

import "time"

/*
ExpireAfterWrite implements a fixed TTL: the clock starts when a value is written
and reads never move it. Rewriting the key starts a new TTL.
*/
type ExpireAfterWrite struct{}

// ExpireAt returns now+ttl, or the zero time when ttl is not positive.
func (ExpireAfterWrite) ExpireAt(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// IsExpired checks whether the expiry has passed. An entry is still live at
// exactly its expiry instant.
func (ExpireAfterWrite) IsExpired(expireAt, now time.Time) bool {
	return !expireAt.IsZero() && now.After(expireAt)
}

var _ Strategy = ExpireAfterWrite{}
