package dto

// CreateGameDTO for adding a catalog entry
type CreateGameDTO struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description"`
	Rating      int     `json:"rating"`
	Price       float64 `json:"price"`
	Feedback    string  `json:"feedback"`
}

// UpdateGameDTO covers the mutable fields; title and slug are fixed at creation
type UpdateGameDTO struct {
	Description string  `json:"description"`
	Rating      int     `json:"rating"`
	Price       float64 `json:"price"`
	Feedback    string  `json:"feedback"`
}
