package models

import "time"

// Session is the server side login record stored in Redis. The browser only
// ever sees the signed JWT that wraps the session ID.
type Session struct {
	ID            string      `json:"id"`
	User          UserProfile `json:"user"`
	UpstreamToken string      `json:"upstream_token"`
	CreatedAt     time.Time   `json:"created_at"`
}
