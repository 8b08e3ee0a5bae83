package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/mocks"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"
)

func newCommentFixture(allowBots bool) (service.CommentService, *mocks.MockCommentRepo, *mocks.MockPostRepo, *mocks.MockBotVerifier) {
	commentRepo := mocks.NewMockCommentRepo()
	postRepo := mocks.NewMockPostRepo()
	verifier := mocks.NewMockBotVerifier(allowBots)
	svc := service.NewCommentService(commentRepo, postRepo, verifier)
	return svc, commentRepo, postRepo, verifier
}

func createTestPost(t *testing.T, postRepo *mocks.MockPostRepo) *model.Post {
	t.Helper()
	post := &model.Post{Title: "Post", Slug: "post", IsPublished: true}
	if err := postRepo.CreatePost(context.Background(), post); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	return post
}

func TestCommentService_CreateTopLevel(t *testing.T) {
	svc, _, postRepo, _ := newCommentFixture(true)
	post := createTestPost(t, postRepo)

	comment, err := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "Reader", Email: "reader@example.com", Content: "Nice poem", RecaptchaToken: "tok",
	})
	if err != nil {
		t.Fatalf("CreateTopLevel failed: %v", err)
	}
	if comment.IsApproved {
		t.Error("new comment must start unapproved")
	}
	if comment.ParentID != nil {
		t.Error("top-level comment must have nil parent")
	}
	if comment.PostID != post.ID {
		t.Errorf("expected post id %d, got %d", post.ID, comment.PostID)
	}
}

func TestCommentService_CreateTopLevel_MissingToken(t *testing.T) {
	svc, commentRepo, postRepo, verifier := newCommentFixture(true)
	post := createTestPost(t, postRepo)

	_, err := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "Reader", Email: "reader@example.com", Content: "x",
	})
	if !errors.Is(err, service.ErrBotTokenMissing) {
		t.Fatalf("expected ErrBotTokenMissing, got %v", err)
	}
	if len(verifier.Tokens) != 0 {
		t.Error("empty token must not reach the verifier")
	}
	if len(commentRepo.Comments) != 0 {
		t.Error("no comment may be written when the bot check is missing")
	}
}

func TestCommentService_CreateTopLevel_BotCheckFailed(t *testing.T) {
	svc, commentRepo, postRepo, _ := newCommentFixture(false)
	post := createTestPost(t, postRepo)

	_, err := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "Reader", Email: "reader@example.com", Content: "x", RecaptchaToken: "bad",
	})
	if !errors.Is(err, service.ErrBotCheckFailed) {
		t.Fatalf("expected ErrBotCheckFailed, got %v", err)
	}
	if len(commentRepo.Comments) != 0 {
		t.Error("failed bot check must not write a comment")
	}
}

func TestCommentService_CreateTopLevel_UnknownPost(t *testing.T) {
	svc, _, _, _ := newCommentFixture(true)

	_, err := svc.CreateTopLevel(context.Background(), 99, &dto.CommentCreateDTO{
		Name: "Reader", Email: "reader@example.com", Content: "x", RecaptchaToken: "tok",
	})
	if !errors.Is(err, service.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_Reply_InheritsParentPost(t *testing.T) {
	svc, _, postRepo, _ := newCommentFixture(true)
	post := createTestPost(t, postRepo)

	parent, err := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "A", Email: "a@example.com", Content: "parent", RecaptchaToken: "tok",
	})
	if err != nil {
		t.Fatalf("CreateTopLevel failed: %v", err)
	}

	reply, err := svc.CreateReply(context.Background(), parent.ID, &dto.CommentCreateDTO{
		Name: "B", Email: "b@example.com", Content: "reply", RecaptchaToken: "tok",
	})
	if err != nil {
		t.Fatalf("CreateReply failed: %v", err)
	}
	if reply.PostID != post.ID {
		t.Errorf("reply must inherit parent's post id, got %d", reply.PostID)
	}
	if reply.ParentID == nil || *reply.ParentID != parent.ID {
		t.Error("reply must reference its parent")
	}
}

func TestCommentService_Reply_ToReplyRejected(t *testing.T) {
	svc, _, postRepo, _ := newCommentFixture(true)
	post := createTestPost(t, postRepo)

	parent, _ := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "A", Email: "a@example.com", Content: "parent", RecaptchaToken: "tok",
	})
	reply, _ := svc.CreateReply(context.Background(), parent.ID, &dto.CommentCreateDTO{
		Name: "B", Email: "b@example.com", Content: "reply", RecaptchaToken: "tok",
	})

	_, err := svc.CreateReply(context.Background(), reply.ID, &dto.CommentCreateDTO{
		Name: "C", Email: "c@example.com", Content: "reply to reply", RecaptchaToken: "tok",
	})
	if !errors.Is(err, service.ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound for third nesting level, got %v", err)
	}
}

func TestCommentService_ListForPost_Tree(t *testing.T) {
	svc, commentRepo, postRepo, _ := newCommentFixture(true)
	post := createTestPost(t, postRepo)

	first, _ := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "A", Email: "a@example.com", Content: "first", RecaptchaToken: "tok",
	})
	second, _ := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "B", Email: "b@example.com", Content: "second", RecaptchaToken: "tok",
	})
	replyOld, _ := svc.CreateReply(context.Background(), first.ID, &dto.CommentCreateDTO{
		Name: "C", Email: "c@example.com", Content: "old reply", RecaptchaToken: "tok",
	})
	replyNew, _ := svc.CreateReply(context.Background(), first.ID, &dto.CommentCreateDTO{
		Name: "D", Email: "d@example.com", Content: "new reply", RecaptchaToken: "tok",
	})
	hiddenReply, _ := svc.CreateReply(context.Background(), first.ID, &dto.CommentCreateDTO{
		Name: "E", Email: "e@example.com", Content: "pending reply", RecaptchaToken: "tok",
	})

	for _, id := range []uint64{first.ID, second.ID, replyOld.ID, replyNew.ID} {
		if _, err := svc.Approve(context.Background(), id); err != nil {
			t.Fatalf("Approve failed: %v", err)
		}
	}
	_ = hiddenReply

	tree, err := svc.ListForPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("ListForPost failed: %v", err)
	}

	if len(tree) != 2 {
		t.Fatalf("expected 2 top-level comments, got %d", len(tree))
	}
	// Top level newest first.
	if tree[0].ID != second.ID || tree[1].ID != first.ID {
		t.Errorf("top-level comments out of order: %d, %d", tree[0].ID, tree[1].ID)
	}
	// Replies oldest first, unapproved hidden.
	replies := tree[1].Replies
	if len(replies) != 2 {
		t.Fatalf("expected 2 approved replies, got %d", len(replies))
	}
	if replies[0].ID != replyOld.ID || replies[1].ID != replyNew.ID {
		t.Errorf("replies out of order: %d, %d", replies[0].ID, replies[1].ID)
	}

	if len(commentRepo.Comments) != 5 {
		t.Errorf("expected 5 stored comments, got %d", len(commentRepo.Comments))
	}
}

func TestCommentService_ListForPost_UnknownPostIsEmpty(t *testing.T) {
	svc, _, _, _ := newCommentFixture(true)

	tree, err := svc.ListForPost(context.Background(), 12345)
	if err != nil {
		t.Fatalf("ListForPost failed: %v", err)
	}
	if tree == nil || len(tree) != 0 {
		t.Errorf("unknown post must list as empty, got %v", tree)
	}
}

func TestCommentService_Create_ExistenceCheckedBeforeBot(t *testing.T) {
	svc, _, _, _ := newCommentFixture(true)

	// Missing token and missing target: the missing target wins.
	_, err := svc.CreateTopLevel(context.Background(), 99, &dto.CommentCreateDTO{
		Name: "Reader", Email: "reader@example.com", Content: "x",
	})
	if !errors.Is(err, service.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	_, err = svc.CreateReply(context.Background(), 99, &dto.CommentCreateDTO{
		Name: "Reader", Email: "reader@example.com", Content: "x",
	})
	if !errors.Is(err, service.ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}
}

func TestCommentService_ListForPost_EmptyIsNotNil(t *testing.T) {
	svc, _, postRepo, _ := newCommentFixture(true)
	post := createTestPost(t, postRepo)

	tree, err := svc.ListForPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("ListForPost failed: %v", err)
	}
	if tree == nil {
		t.Fatal("empty thread must be an empty list, not nil")
	}
	if len(tree) != 0 {
		t.Errorf("expected 0 comments, got %d", len(tree))
	}
}

func TestCommentService_Approve_Idempotent(t *testing.T) {
	svc, _, postRepo, _ := newCommentFixture(true)
	post := createTestPost(t, postRepo)

	comment, _ := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "A", Email: "a@example.com", Content: "x", RecaptchaToken: "tok",
	})

	for i := 0; i < 2; i++ {
		approved, err := svc.Approve(context.Background(), comment.ID)
		if err != nil {
			t.Fatalf("Approve run %d failed: %v", i+1, err)
		}
		if !approved.IsApproved {
			t.Fatalf("comment not approved after run %d", i+1)
		}
	}
}

func TestCommentService_Delete_CascadesOneLevel(t *testing.T) {
	svc, commentRepo, postRepo, _ := newCommentFixture(true)
	post := createTestPost(t, postRepo)

	parent, _ := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "A", Email: "a@example.com", Content: "parent", RecaptchaToken: "tok",
	})
	_, _ = svc.CreateReply(context.Background(), parent.ID, &dto.CommentCreateDTO{
		Name: "B", Email: "b@example.com", Content: "reply", RecaptchaToken: "tok",
	})
	other, _ := svc.CreateTopLevel(context.Background(), post.ID, &dto.CommentCreateDTO{
		Name: "C", Email: "c@example.com", Content: "unrelated", RecaptchaToken: "tok",
	})

	if err := svc.Delete(context.Background(), parent.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if len(commentRepo.Comments) != 1 {
		t.Fatalf("expected only the unrelated comment to survive, got %d", len(commentRepo.Comments))
	}
	if _, ok := commentRepo.Comments[other.ID]; !ok {
		t.Error("unrelated comment was deleted")
	}
}

func TestCommentService_Delete_Unknown(t *testing.T) {
	svc, _, _, _ := newCommentFixture(true)
	if err := svc.Delete(context.Background(), 42); !errors.Is(err, service.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
