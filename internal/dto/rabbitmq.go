package dto

import "github.com/google/uuid"

type MQUserCreatedMsg struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
}

type MQUserDeletedMsg struct {
	UserID uuid.UUID `json:"user_id"`
}
