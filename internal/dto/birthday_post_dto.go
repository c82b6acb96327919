package dto

import "time"

// BirthdayPostCreateDTO is the body of POST /birthday-posts. ImageURLs come from the
// external upload service and are stored as given.
type BirthdayPostCreateDTO struct {
	Name      string   `json:"name" binding:"required"`
	Message   string   `json:"message" binding:"required"`
	ImageURLs []string `json:"imageUrls"`
}

// BirthdayPostDTO is a stored post as returned to clients.
type BirthdayPostDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	ImageURLs []string  `json:"image_urls"`
	CreatedAt time.Time `json:"created_at"`
}

type BirthdayPostResponse struct {
	Success bool            `json:"success"`
	Post    BirthdayPostDTO `json:"post"`
}

type BirthdayPostListResponse struct {
	Success bool              `json:"success"`
	Posts   []BirthdayPostDTO `json:"posts"`
}
