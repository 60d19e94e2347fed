package dto

type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required,min=1"`
	Slug        string `json:"slug" binding:"required,min=1"`
	Description string `json:"description"`
}
