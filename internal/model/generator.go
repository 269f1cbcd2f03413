package model

// Generator is a named collection of categorized options owned by one user.
// Options are held by value; the owner is referenced by id only.
type Generator struct {
	ID      int64    `json:"id"`
	OwnerID int64    `json:"ownerId"`
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// Option is a single categorized choice belonging to exactly one generator.
type Option struct {
	ID          int64  `json:"id"`
	GeneratorID int64  `json:"generatorId"`
	Category    string `json:"category"`
	Value       string `json:"value"`
}

// AddGeneratorRequest represents a generator creation request.
// Options may be supplied inline at creation time.
type AddGeneratorRequest struct {
	Name    string             `json:"name"`
	Options []AddOptionRequest `json:"options"`
}

// AddOptionRequest represents a single option in a creation or
// addOption request.
type AddOptionRequest struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}
