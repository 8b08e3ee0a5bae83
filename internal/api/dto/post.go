package dto

// PostCreateDTO new blog post payload.
type PostCreateDTO struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"required,max=200"`
	Excerpt     string `json:"excerpt" binding:"required,max=500"`
	Content     string `json:"content" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Date        string `json:"date" binding:"required"`
	IsPublished *bool  `json:"isPublished"`
}

// PostUpdateDTO partial update payload; nil fields are left untouched.
type PostUpdateDTO struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Slug        *string `json:"slug" binding:"omitempty,max=200"`
	Excerpt     *string `json:"excerpt" binding:"omitempty,max=500"`
	Content     *string `json:"content"`
	Image       *string `json:"image"`
	Date        *string `json:"date"`
	IsPublished *bool   `json:"isPublished"`
}

// PostAdminListDTO admin dashboard listing with publish totals.
type PostAdminListDTO struct {
	Count            int         `json:"count"`
	PublishedCount   int         `json:"publishedCount"`
	UnpublishedCount int         `json:"unpublishedCount"`
	Posts            interface{} `json:"posts"`
}
