package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	RedisSessionKeyFormat       = "session:%s"
	RedisOrderDraftKeyFormat    = "draft:%s"
	RedisMedicineCatalogKey     = "catalog:medicines"
	RedisLoginAttemptsKeyFormat = "login_attempts:%s"
)

const (
	// Wire format for reminder dates sent to the pharmacy backend.
	DateLayoutReminder = "2006-01-02"
)

const (
	// Frontend routes the auth gate redirects to.
	RouteLanding      = "/"
	RouteOrderHistory = "/dashboard/order/history"
)

const (
	CollectionMethodMyself = "myself"
	CollectionMethodOther  = "other"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusComplete = "complete"
	OrderStatusReject   = "reject"
)
