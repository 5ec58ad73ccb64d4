package models

// Medicine is a catalog entry from the pharmacy backend. Key is nil for
// medicines the backend has no stable identifier for.
type Medicine struct {
	Key  *string `json:"key"`
	Name string  `json:"name"`
}
