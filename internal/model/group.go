package model

type Group struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type GroupRef struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
