package dto

import "github.com/maxzok/hw05-final/internal/model"

type PostDetail struct {
	Post     model.FullPost       `json:"post"`
	Comments []*model.FullComment `json:"comments"`
}
