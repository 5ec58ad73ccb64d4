package responses

import "taskgo-service/internal/app/models"

type Profile struct {
	User models.UserProfile `json:"user"`
}

type UpstreamUser struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    models.UserProfile `json:"user"`
}
