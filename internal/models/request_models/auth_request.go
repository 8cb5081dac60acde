package request_models

type SignUpRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`

	// Optional initial roles.
	IsClient     bool `json:"isClient"`
	IsInstructor bool `json:"isInstructor"`
	IsAdmin      bool `json:"isAdmin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type EditUserInfoRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// SetRolesRequest carries tri-state flags: nil leaves the role untouched.
type SetRolesRequest struct {
	IsClient     *bool `json:"isClient"`
	IsInstructor *bool `json:"isInstructor"`
	IsAdmin      *bool `json:"isAdmin"`
}
