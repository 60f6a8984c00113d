package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidPublication = errors.New("invalid publication payload")

// Publication is the part of a published post that ends up in a broadcast.
type Publication struct {
	Title   string
	Excerpt string
	Slug    string
	URL     string
}

type ghostPost struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	URL           string `json:"url"`
	CustomExcerpt string `json:"custom_excerpt"`
	Excerpt       string `json:"excerpt"`
	Plaintext     string `json:"plaintext"`
}

type ghostWebhook struct {
	Post struct {
		Current *ghostPost `json:"current"`
	} `json:"post"`
}

// DecodePublication reads a post.published webhook body. The excerpt falls back from
// the author's custom excerpt to the generated one and then to the plain text.
func DecodePublication(body []byte) (Publication, error) {
	var w ghostWebhook
	if err := json.Unmarshal(body, &w); err != nil {
		return Publication{}, fmt.Errorf("%w: %v", ErrInvalidPublication, err)
	}
	post := w.Post.Current
	if post == nil {
		return Publication{}, fmt.Errorf("%w: post.current is missing", ErrInvalidPublication)
	}

	excerpt := post.CustomExcerpt
	if excerpt == "" {
		excerpt = post.Excerpt
	}
	if excerpt == "" {
		excerpt = post.Plaintext
	}

	return Publication{
		Title:   post.Title,
		Excerpt: excerpt,
		Slug:    post.Slug,
		URL:     post.URL,
	}, nil
}
