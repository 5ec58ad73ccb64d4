package constvars

// Upstream pharmacy backend endpoints consumed by the portal.
const (
	UpstreamLogin              = "/login"
	UpstreamSignup             = "/signup"
	UpstreamLogout             = "/logout"
	UpstreamForgotPassword     = "/forgot-password"
	UpstreamResetPassword      = "/reset-password"
	UpstreamGetUser            = "/get-user"
	UpstreamUpdateUser         = "/update-user"
	UpstreamUploadProfileImage = "/upload-profile-image"
	UpstreamRemoveProfileImage = "/remove-profile-image"
	UpstreamGetMedicines       = "/get-medicines"
	UpstreamCreateOrders       = "/create-orders"
	UpstreamGetOrders          = "/get-orders"
	UpstreamGetOrder           = "/get-order"
	UpstreamReorder            = "/reorder"
)

const (
	ResourceUser     = "User"
	ResourceMedicine = "Medicine"
	ResourceOrder    = "Order"
	ResourceSession  = "Session"
)

// NominatedPharmacies maps pharmacy codes to their display names.
var NominatedPharmacies = map[string]string{
	"hanlysNewRos":        "Hanlys Local Pharmacy, New Ross",
	"kellysEnniscorthy":   "Kellys Local Pharmacy, Enniscorthy",
	"odonnellsTaghmon":    "O'Donnells Local Pharmacy, Taghmon",
	"mayorsWalkWaterford": "Mayors Walk Local Pharmacy, Waterford",
	"pharmacyHub":         "Pharmacy Hub, Kilkenny",
}

var MobileNumberPrefixes = map[string]bool{
	"+353": true,
	"+44":  true,
}
