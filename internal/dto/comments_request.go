package dto

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

type GetCommentsRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
