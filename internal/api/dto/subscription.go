package dto

// SubscriptionCreateDTO mailing-list signup.
type SubscriptionCreateDTO struct {
	FirstName      string `json:"firstName" binding:"required,max=50"`
	LastName       string `json:"lastName" binding:"required,max=50"`
	Email          string `json:"email" binding:"required,email"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// UnsubscribeDTO soft-unsubscribe request.
type UnsubscribeDTO struct {
	Email string `json:"email"`
}
