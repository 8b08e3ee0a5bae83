package consts

// Redis key prefixes.
const (
	TokenDenyKey = "token:deny:"
)

// AuthCookieName is the cookie carrying the session JWT.
const AuthCookieName = "token"

// RecaptchaTestToken is Google's fixed test token, accepted without a
// remote call outside production.
const RecaptchaTestToken = "6LeIxAcTAAAAAJcZVRqyHh71UMIEGNQ_MXjiZKhI"

// UploadFolder is the fixed logical folder all media objects live under.
const UploadFolder = "aadil_blog"
