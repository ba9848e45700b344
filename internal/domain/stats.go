package domain

// Stats summarizes the journal. ActiveIdeas + ArchivedIdeas == TotalIdeas.
type Stats struct {
	TotalIdeas      int `json:"total_ideas"`
	ActiveIdeas     int `json:"active_ideas"`
	ArchivedIdeas   int `json:"archived_ideas"`
	TotalCategories int `json:"total_categories"`
}

// ComputeStats counts over a single snapshot of the collections.
func ComputeStats(ideas []*Idea, categoryCount int) Stats {
	s := Stats{
		TotalIdeas:      len(ideas),
		TotalCategories: categoryCount,
	}
	for _, idea := range ideas {
		if idea.IsArchived {
			s.ArchivedIdeas++
		} else {
			s.ActiveIdeas++
		}
	}
	return s
}
