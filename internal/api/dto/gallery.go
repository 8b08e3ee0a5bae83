package dto

// GalleryItemDTO create/update payload for a gallery image.
type GalleryItemDTO struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"omitempty,max=500"`
	ImageURL     string `json:"imageUrl" binding:"required,max=512"`
	DisplayOrder *int   `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}
