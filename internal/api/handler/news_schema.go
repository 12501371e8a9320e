package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// newsRequest carries the only client-controlled fields of an article.
// Author, admin flag and posted date are always derived server-side.
type newsRequest struct {
	Header string `json:"header" validate:"required"`
	Detail string `json:"detail" validate:"required"`
}

// newsResponse is the article view returned to clients. Field names follow
// the public JSON contract of the API.
type newsResponse struct {
	ID             int       `json:"id"`
	Header         string    `json:"header"`
	Detail         string    `json:"detail"`
	PostedDate     time.Time `json:"postedDate"`
	IsAdminNews    bool      `json:"isAdminNews"`
	AuthorID       int       `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
}

// passwordUpdateRequest carries a password change. The current password must
// be proven before the new one is accepted.
type passwordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
}
