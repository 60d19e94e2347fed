package dto

type CreatePostRequest struct {
	Text  string  `json:"text" binding:"required,min=1"`
	Group *string `json:"group"`
	Image *string `json:"image"`
}

type EditPostRequest struct {
	Text  *string `json:"text"`
	Group *string `json:"group"`
	Image *string `json:"image"`
}
