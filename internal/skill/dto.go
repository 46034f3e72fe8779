package skill

// CreateSkillRequest represents the request to add a skill to the catalogue
type CreateSkillRequest struct {
	Category    string  `json:"category" validate:"required,max=100"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
}

// UpdateSkillRequest represents the request to update a catalogued skill
type UpdateSkillRequest struct {
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`
}
