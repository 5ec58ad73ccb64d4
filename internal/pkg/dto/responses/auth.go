package responses

import "taskgo-service/internal/app/models"

type Login struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

// UpstreamAuth is the envelope the pharmacy backend wraps its auth
// responses in.
type UpstreamAuth struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    models.UserProfile `json:"user"`
}
