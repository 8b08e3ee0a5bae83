package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
)

// MockUserRepo is an in-memory UserRepo.
type MockUserRepo struct {
	mu     sync.Mutex
	nextID uint64
	Users  map[uint64]*model.User
	Err    error
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{Users: make(map[uint64]*model.User), nextID: 1}
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	user.ID = m.nextID
	m.nextID++
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users[id], nil
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

// MockPostRepo is an in-memory PostRepo.
type MockPostRepo struct {
	mu     sync.Mutex
	nextID uint64
	Posts  map[uint64]*model.Post
	Err    error
}

func NewMockPostRepo() *MockPostRepo {
	return &MockPostRepo{Posts: make(map[uint64]*model.Post), nextID: 1}
}

func (m *MockPostRepo) CreatePost(ctx context.Context, post *model.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	post.ID = m.nextID
	m.nextID++
	m.Posts[post.ID] = post
	return nil
}

func (m *MockPostRepo) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	// Getters hand out fresh rows, like a real query would.
	if post, ok := m.Posts[id]; ok {
		clone := *post
		return &clone, nil
	}
	return nil, nil
}

func (m *MockPostRepo) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, post := range m.Posts {
		if post.Slug == slug && post.IsPublished {
			clone := *post
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *MockPostRepo) ListPublished(ctx context.Context) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]*model.Post, 0)
	for _, post := range m.Posts {
		if post.IsPublished {
			result = append(result, post)
		}
	}
	sortPostsByIDDesc(result)
	return result, nil
}

func (m *MockPostRepo) ListAll(ctx context.Context) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]*model.Post, 0, len(m.Posts))
	for _, post := range m.Posts {
		result = append(result, post)
	}
	sortPostsByIDDesc(result)
	return result, nil
}

func (m *MockPostRepo) UpdatePost(ctx context.Context, post *model.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Posts[post.ID] = post
	return nil
}

func (m *MockPostRepo) DeletePost(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.Posts, id)
	return nil
}

func (m *MockPostRepo) IncrementLikes(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if post, ok := m.Posts[id]; ok {
		post.Likes++
	}
	return nil
}

func sortPostsByIDDesc(posts []*model.Post) {
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
}

// MockCommentRepo is an in-memory CommentRepo.
type MockCommentRepo struct {
	mu       sync.Mutex
	nextID   uint64
	Comments map[uint64]*model.Comment
	Err      error
}

func NewMockCommentRepo() *MockCommentRepo {
	return &MockCommentRepo{Comments: make(map[uint64]*model.Comment), nextID: 1}
}

func (m *MockCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	comment.ID = m.nextID
	m.nextID++
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepo) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comments[id], nil
}

func (m *MockCommentRepo) ListTopLevelApproved(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]*model.Comment, 0)
	for _, comment := range m.Comments {
		if comment.PostID == postID && comment.ParentID == nil && comment.IsApproved {
			result = append(result, comment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockCommentRepo) ListApprovedReplies(ctx context.Context, parentIDs []uint64) ([]*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	wanted := make(map[uint64]bool, len(parentIDs))
	for _, id := range parentIDs {
		wanted[id] = true
	}
	result := make([]*model.Comment, 0)
	for _, comment := range m.Comments {
		if comment.ParentID != nil && wanted[*comment.ParentID] && comment.IsApproved {
			result = append(result, comment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockCommentRepo) ListAllWithPost(ctx context.Context) ([]*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]*model.Comment, 0, len(m.Comments))
	for _, comment := range m.Comments {
		result = append(result, comment)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockCommentRepo) ApproveComment(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if comment, ok := m.Comments[id]; ok {
		comment.IsApproved = true
	}
	return nil
}

func (m *MockCommentRepo) DeleteWithReplies(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for cid, comment := range m.Comments {
		if comment.ParentID != nil && *comment.ParentID == id {
			delete(m.Comments, cid)
		}
	}
	delete(m.Comments, id)
	return nil
}

// MockSubscriptionRepo is an in-memory SubscriptionRepo.
type MockSubscriptionRepo struct {
	mu            sync.Mutex
	nextID        uint64
	Subscriptions map[uint64]*model.Subscription
	Err           error
}

func NewMockSubscriptionRepo() *MockSubscriptionRepo {
	return &MockSubscriptionRepo{Subscriptions: make(map[uint64]*model.Subscription), nextID: 1}
}

func (m *MockSubscriptionRepo) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	sub.ID = m.nextID
	m.nextID++
	m.Subscriptions[sub.ID] = sub
	return nil
}

func (m *MockSubscriptionRepo) GetSubscriptionByID(ctx context.Context, id uint64) (*model.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Subscriptions[id], nil
}

func (m *MockSubscriptionRepo) GetSubscriptionByEmail(ctx context.Context, email string) (*model.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, sub := range m.Subscriptions {
		if sub.Email == email {
			return sub, nil
		}
	}
	return nil, nil
}

func (m *MockSubscriptionRepo) ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]*model.Subscription, 0, len(m.Subscriptions))
	for _, sub := range m.Subscriptions {
		result = append(result, sub)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockSubscriptionRepo) SetSubscribed(ctx context.Context, id uint64, subscribed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if sub, ok := m.Subscriptions[id]; ok {
		sub.IsSubscribed = subscribed
	}
	return nil
}

func (m *MockSubscriptionRepo) DeleteSubscription(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.Subscriptions, id)
	return nil
}

// MockUploadRepo is an in-memory UploadRepo.
type MockUploadRepo struct {
	mu        sync.Mutex
	nextID    uint64
	Uploads   map[uint64]*model.Upload
	CreateErr error
	Err       error
}

func NewMockUploadRepo() *MockUploadRepo {
	return &MockUploadRepo{Uploads: make(map[uint64]*model.Upload), nextID: 1}
}

func (m *MockUploadRepo) CreateUpload(ctx context.Context, upload *model.Upload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.Err != nil {
		return m.Err
	}
	upload.ID = m.nextID
	m.nextID++
	m.Uploads[upload.ID] = upload
	return nil
}

func (m *MockUploadRepo) GetUploadByID(ctx context.Context, id uint64) (*model.Upload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Uploads[id], nil
}

func (m *MockUploadRepo) ListUploads(ctx context.Context) ([]*model.Upload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]*model.Upload, 0, len(m.Uploads))
	for _, upload := range m.Uploads {
		result = append(result, upload)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockUploadRepo) DeleteUpload(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.Uploads, id)
	return nil
}

// MockContactRepo is an in-memory ContactRepo.
type MockContactRepo struct {
	mu       sync.Mutex
	nextID   uint64
	Contacts map[uint64]*model.Contact
	Err      error
}

func NewMockContactRepo() *MockContactRepo {
	return &MockContactRepo{Contacts: make(map[uint64]*model.Contact), nextID: 1}
}

func (m *MockContactRepo) CreateContact(ctx context.Context, contact *model.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	contact.ID = m.nextID
	m.nextID++
	m.Contacts[contact.ID] = contact
	return nil
}

func (m *MockContactRepo) GetContactByID(ctx context.Context, id uint64) (*model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Contacts[id], nil
}

func (m *MockContactRepo) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]*model.Contact, 0, len(m.Contacts))
	for _, contact := range m.Contacts {
		result = append(result, contact)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockContactRepo) SetRead(ctx context.Context, id uint64, read bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if contact, ok := m.Contacts[id]; ok {
		contact.IsRead = read
	}
	return nil
}

func (m *MockContactRepo) DeleteContact(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.Contacts, id)
	return nil
}
