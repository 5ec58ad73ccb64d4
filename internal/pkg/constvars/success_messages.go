package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess       = "Your account has been created successfully."
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	ForgotPasswordSuccess = "reset password link already sent to your email"
	ResetPasswordSuccess  = "password already reset successfully"

	// User messages
	ProfileGetSuccess          = "get profile successfully"
	ProfileUpdateSuccess       = "Your account details have been updated successfully."
	ProfileImageUploadSuccess  = "Your profile image has been updated successfully."
	ProfileImageRemoveSuccess  = "Your profile image has been removed successfully."

	// Medicine messages
	MedicineListSuccess = "get medicines successfully"

	// Order messages
	OrderDraftGetSuccess    = "get order draft successfully"
	OrderDraftUpdateSuccess = "order draft updated successfully"
	OrderPlacedSuccess      = "Your order has been placed successfully."
	ReorderSuccess          = "Your order has been successfully placed. Please review your order details."
	OrderListSuccess        = "get orders successfully"
	OrderDetailSuccess      = "get order detail successfully"
)
