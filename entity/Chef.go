package entity

// ChefUser is the /add-chef request body. Enabled defaults to true when the
// field is omitted.
type ChefUser struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Enabled  *bool  `json:"enabled"`
}

// ChefRecord is the roster entry mirrored under chef_users/<key>. The password
// never leaves the auth provider.
type ChefRecord struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
