package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"alphanum":          "must contain only alphanumeric characters",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"eqfield":           "must match %s",
	"numeric":           "must be a number",
	"len":               "must be %s characters long",
	"oneof":             "must be one of [%s]",
	"gt":                "must be greater than %s",
	"gte":               "must be greater than or equal to %s",
	"url":               "must be a valid URL",
	"uuid":              "must be a valid UUID",
	"collection_method": "must be either 'myself' or 'other'",
	"pharmacy":          "must be a valid nominated pharmacy",
	"dob":               "must be a date in DD-MM-YYYY format",
	"mobile_prefix":     "must be one of the supported dialing prefixes",
	"accepted":          "must be accepted",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
}

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application. Please try again."
	ErrClientCannotProcessRequest          = "We cannot process your request right now. Please try again."
	ErrClientNotAuthorized                 = "You are not authorized to perform this action."
	ErrClientNotLoggedIn                   = "Your session has expired. Please log in again."
	ErrClientInvalidCredentials            = "You entered invalid credentials. Please try again."
	ErrClientServerLongRespond             = "The server took too long to respond. Please try again."
	ErrClientPasswordsDoNotMatch           = "The passwords do not match. Please try again."
	ErrClientEmailsDoNotMatch              = "The email addresses do not match. Please try again."
	ErrClientPrivacyPolicyNotAccepted      = "You must accept the privacy policy."
	ErrClientInvalidResetRequest           = "Invalid Request. No reset token found. Please try the password reset process again."
	ErrClientInvalidImageFormat            = "The image format is not supported. Please upload a different file."
	ErrClientImageTooLarge                 = "The image is too large. Please upload a smaller file."
	ErrClientOrderFailed                   = "There was an error placing your order. Please try again."
	ErrClientReorderPending                = "A pending order cannot be reordered."
	ErrClientDraftNoMedicines              = "Please add at least one medicine to proceed."
	ErrClientDraftQuantityInvalid          = "Quantity must be a positive whole number."
	ErrClientDraftNoSuchMedicine           = "That medicine is not on your list."
	ErrClientDraftCannotAdvance            = "You are already at the last step."
	ErrClientReminderDateRequired          = "Please select a reminder date."
	ErrClientCollectionMethodRequired      = "Please select a collection method."
	ErrClientTooManyLoginAttempts          = "Too many login attempts. Please wait a moment and try again."
)

// Developer-facing messages
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm  = "Failed to parse multipart form"
	ErrDevImageValidationFailed     = "Profile image validation failed"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to sign session JWT"
	ErrDevAuthInvalidSession        = "Session not found or expired in Redis"
	ErrDevResetTokenMissing         = "Reset password token missing from request"
	ErrDevServerDeadlineExceeded    = "Context deadline exceeded while processing request"
	ErrDevRedisSetData              = "Failed to set data in Redis"
	ErrDevRedisGetData              = "Failed to get data from Redis"
	ErrDevRedisGetNoData            = "No data found in Redis for key: %s"
	ErrDevRedisDeleteData           = "Failed to delete data from Redis"
	ErrDevRedisIncrementValue       = "Failed to increment value in Redis"
	ErrDevMinioFailedToCreateObject = "Failed to create object in bucket: %s"
	ErrDevRabbitMQPublishMessage    = "Failed to publish message to queue: %s"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request to pharmacy backend"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request to pharmacy backend"
	ErrDevUpstreamRejected          = "Pharmacy backend rejected the %s request"
	ErrDevUpstreamDecodeResponse    = "Failed to decode pharmacy backend %s response"
	ErrDevDraftEmptyMedicines       = "Order draft has no medicine lines"
	ErrDevDraftNoSuchMedicine       = "No draft line matches the given medicine"
	ErrDevDraftStepValidation       = "Order draft step validation failed"
	ErrDevDraftNotAtReview          = "Order draft submitted before reaching the review step"
	ErrDevReorderPendingOrder       = "Reorder attempted on a pending order"
	ErrDevServerProcess             = "Server failed to process the request"
	ErrDevTooManyLoginAttempts      = "Login attempt limit reached for this email"
	ErrDevImageTooLarge             = "Uploaded profile image exceeds the size limit"
)
