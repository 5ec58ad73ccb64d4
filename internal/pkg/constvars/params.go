package constvars

const (
	URLParamOrderID = "order_id"
)

const (
	URLQueryParamSearch = "search"
)
