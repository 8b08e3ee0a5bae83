package dto

import "time"

// CommentCreateDTO public comment or reply submission.
type CommentCreateDTO struct {
	Name           string `json:"name" binding:"required,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Content        string `json:"content" binding:"required,max=1000"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// CommentDTO is a comment node; top-level nodes carry their approved
// replies ordered oldest first.
type CommentDTO struct {
	ID         uint64        `json:"id"`
	PostID     uint64        `json:"postId"`
	ParentID   *uint64       `json:"parentId"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Content    string        `json:"content"`
	IsApproved bool          `json:"isApproved"`
	CreatedAt  time.Time     `json:"createdAt"`
	Replies    []*CommentDTO `json:"replies,omitempty"`
}

// AdminCommentDTO annotates a comment with a minimal reference to its
// owning post.
type AdminCommentDTO struct {
	CommentDTO
	Post *CommentPostRef `json:"post,omitempty"`
}

type CommentPostRef struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}
