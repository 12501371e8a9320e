package handler

import (
	"github.com/newsdesk/news-backend/internal/core/ports"
)

// --- Service result → HTTP response ---

func toNewsResponse(item ports.NewsItem) newsResponse {
	return newsResponse{
		ID:             item.ID,
		Header:         item.Header,
		Detail:         item.Detail,
		PostedDate:     item.PostedDate,
		IsAdminNews:    item.IsAdminNews,
		AuthorID:       item.AuthorID,
		AuthorUsername: item.AuthorUsername,
	}
}

func toNewsListResponse(items []ports.NewsItem) []newsResponse {
	out := make([]newsResponse, len(items))
	for i, item := range items {
		out[i] = toNewsResponse(item)
	}
	return out
}
