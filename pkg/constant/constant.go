package constant

// Cookie names shared by the handlers, the edge gatekeeper and the
// client package. The three cookies are always set and cleared as a
// unit; partial state is treated as unauthenticated.
const (
	CookieRefreshToken = "refreshToken"
	CookieUID          = "uid"
	CookieUserType     = "userType"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// AdminUIDSentinel is stored in the uid cookie for administrators. It
// can never match a student path segment, which normalizes to digits.
const AdminUIDSentinel = "admin-user"

const (
	AdminHomePath = "/home"
	LoginPath     = "/"
	LogoutPath    = "/logout"
)
