package teams

import "sort"

// Known categories across tournament editions. The store may hold others; categories are
// compared as plain strings.
const (
	CategoryPria       = "pria"
	CategoryWanita     = "wanita"
	CategoryGandaPutra = "Ganda Putra"
	CategoryGandaPutri = "Ganda Putri"
	CategoryFunMatch   = "Fun Match"
)

// Team is a registered tournament team. Teams are administered outside this service.
type Team struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// InCategory returns the teams belonging to category, preserving order.
func InCategory(items []Team, category string) []Team {
	out := make([]Team, 0, len(items))
	for _, t := range items {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// ByID indexes teams by identifier.
func ByID(items []Team) map[string]Team {
	out := make(map[string]Team, len(items))
	for _, t := range items {
		out[t.ID] = t
	}
	return out
}

// SortByName orders teams by display name, then id for stable output.
func SortByName(items []Team) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name == items[j].Name {
			return items[i].ID < items[j].ID
		}
		return items[i].Name < items[j].Name
	})
}
