package dto

import "github.com/maxzok/hw05-final/internal/model"

type FeedPage struct {
	Items      []*model.FeedPost `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	HasNext    bool              `json:"has_next"`
	HasPrev    bool              `json:"has_prev"`
}
