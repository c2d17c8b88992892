package model

// Role scopes what an operator may do: admins manage inventory and
// suppliers, cashiers drive the cart and checkout flow.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleCashier Role = "Cashier"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCashier
}

// SecurityQuestions is the catalog offered during registration.
var SecurityQuestions = []string{
	"What is your mother's maiden name?",
	"What was the name of your first pet?",
	"What city were you born in?",
	"What is the name of your first school?",
	"What is your favorite movie?",
	"What is your father's middle name?",
	"What is the name of your childhood best friend?",
}
