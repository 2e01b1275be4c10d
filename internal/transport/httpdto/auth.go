package httpdto

// SignupRequest is used for POST /signup
type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=Admin Teacher Parent"`
}

// LoginRequest is used for POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string       `json:"message"`
	User    LoginUserDTO `json:"user"`
}

// LoginUserDTO is the account record echoed back on login. It carries
// the password hash because the existing client depends on the full
// record shape; see DESIGN.md before changing it.
type LoginUserDTO struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
}
