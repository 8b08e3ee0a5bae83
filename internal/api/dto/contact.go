package dto

// ContactCreateDTO public contact form submission.
type ContactCreateDTO struct {
	FirstName      string `json:"firstName" binding:"required,max=50"`
	LastName       string `json:"lastName" binding:"required,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Message        string `json:"message" binding:"required"`
	RecaptchaToken string `json:"recaptchaToken"`
}
