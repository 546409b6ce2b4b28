package draws

// Assignment links a team to its drawing number.
type Assignment struct {
	TeamID string `json:"teamId"`
	Number int    `json:"number"`
}

// Result is an assignment enriched with the team it belongs to, used for display.
type Result struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	Category string `json:"category"`
	Number   int    `json:"number"`
}
