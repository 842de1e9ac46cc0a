package dto

// CreateUserDTO for registering a new user
type CreateUserDTO struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// UpdateUserDTO carries the only user fields that may change after creation
type UpdateUserDTO struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
}
