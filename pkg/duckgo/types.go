package duckgo

import "time"

// TextResult is one entry from a text search.
type TextResult struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"href" yaml:"href"`
	Description string `json:"body" yaml:"body"`
}

// ImageResult is one entry from an image search.
type ImageResult struct {
	Title     string `json:"title" yaml:"title"`
	Image     string `json:"image" yaml:"image"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
	URL       string `json:"url" yaml:"url"`
	Height    int    `json:"height" yaml:"height"`
	Width     int    `json:"width" yaml:"width"`
	Source    string `json:"source" yaml:"source"`
}

// VideoResult is one entry from a video search. Content is the
// provider's identity for the video and the dedup key across pages.
type VideoResult struct {
	Content     string          `json:"content" yaml:"content"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Duration    string          `json:"duration" yaml:"duration"`
	EmbedURL    string          `json:"embed_url" yaml:"embed_url"`
	Image       string          `json:"image" yaml:"image"`
	Provider    string          `json:"provider" yaml:"provider"`
	Published   string          `json:"published" yaml:"published"`
	Publisher   string          `json:"publisher" yaml:"publisher"`
	Uploader    string          `json:"uploader" yaml:"uploader"`
	Statistics  VideoStatistics `json:"statistics" yaml:"statistics"`
}

// VideoStatistics holds view counts when the provider reports them.
type VideoStatistics struct {
	ViewCount int `json:"viewCount" yaml:"view_count"`
}

// NewsResult is one entry from a news search.
type NewsResult struct {
	Date   time.Time `json:"date" yaml:"date"`
	Title  string    `json:"title" yaml:"title"`
	Body   string    `json:"body" yaml:"body"`
	URL    string    `json:"url" yaml:"url"`
	Image  string    `json:"image,omitempty" yaml:"image,omitempty"`
	Source string    `json:"source" yaml:"source"`
}

// ChatRole is a chat message author.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a chat conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
