package dto

// SocialLinkDTO create/update payload for a social media link.
type SocialLinkDTO struct {
	Type         string `json:"type" binding:"omitempty,oneof=instagram facebook twitter"`
	URL          string `json:"url" binding:"required,max=512"`
	DisplayOrder *int   `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}
