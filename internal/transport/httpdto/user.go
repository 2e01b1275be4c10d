package httpdto

// UserDTO is the directory projection of an account. The password hash
// is deliberately absent.
type UserDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// AccountDTO represents an account in role-filtered listings.
type AccountDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
