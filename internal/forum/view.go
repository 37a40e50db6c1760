package forum

import (
	"time"

	"propnest-backend/internal/models"
	"propnest-backend/internal/pkg/text"
)

// PostView is the flat thread shape for the forum index.
type PostView struct {
	PostID     string  `json:"postId"`
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Category   string  `json:"category"`
	AuthorName string  `json:"authorName"`
	AuthorID   *string `json:"authorId"`
	Likes      int     `json:"likes"`
	Dislikes   int     `json:"dislikes"`
	ReplyCount int     `json:"replyCount"`
	ReplyLabel string  `json:"replyLabel"`
	CreatedAt  string  `json:"createdAt"`
}

// ReplyView is a flattened reply.
type ReplyView struct {
	ReplyID    string  `json:"replyId"`
	PostID     string  `json:"postId"`
	Body       string  `json:"body"`
	AuthorName string  `json:"authorName"`
	AuthorID   *string `json:"authorId"`
	CreatedAt  string  `json:"createdAt"`
}

// ThreadView is a post plus its replies for the detail page.
type ThreadView struct {
	PostView
	Replies []ReplyView `json:"replies"`
}

func ToPostView(p models.ForumPost) PostView {
	view := PostView{
		PostID:     p.PostID.String(),
		Title:      p.Title,
		Body:       p.Body,
		Category:   p.Category,
		AuthorName: p.AuthorName,
		Likes:      p.Likes,
		Dislikes:   p.Dislikes,
		ReplyCount: len(p.Replies),
		ReplyLabel: text.Pluralize(len(p.Replies), "reply", "replies"),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.AuthorID != nil {
		id := p.AuthorID.String()
		view.AuthorID = &id
	}
	return view
}

func ToPostViews(posts []models.ForumPost) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, ToPostView(p))
	}
	return views
}

func ToReplyView(r models.ForumReply) ReplyView {
	view := ReplyView{
		ReplyID:    r.ReplyID.String(),
		PostID:     r.PostID.String(),
		Body:       r.Body,
		AuthorName: r.AuthorName,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.AuthorID != nil {
		id := r.AuthorID.String()
		view.AuthorID = &id
	}
	return view
}

func ToThreadView(p models.ForumPost) ThreadView {
	replies := make([]ReplyView, 0, len(p.Replies))
	for _, r := range p.Replies {
		replies = append(replies, ToReplyView(r))
	}
	return ThreadView{PostView: ToPostView(p), Replies: replies}
}
