package constants

// Route constants shared between router and controllers
const (
	LoginRoute      = "/login"
	LogoutRoute     = "/logout"
	AccessRoute     = "/"
	ChargebackRoute = "/chargeback"
)
