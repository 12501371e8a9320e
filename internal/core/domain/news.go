package domain

import (
	"errors"
	"time"
)

var ErrNewsNotFound = errors.New("news not found")
var ErrForbidden = errors.New("access forbidden")

// News is a single published article. PostedDate is always stored in UTC;
// conversion to the display timezone happens on the way out.
type News struct {
	ID             int       `json:"id"`
	Header         string    `json:"header"`
	Detail         string    `json:"detail"`
	PostedDate     time.Time `json:"postedDate"`
	AuthorID       int       `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	IsAdminNews    bool      `json:"isAdminNews"`
}
