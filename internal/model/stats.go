package model

// CategoryStat is per-category accuracy derived from attempt history.
// Recomputed from scratch on every request; never persisted.
type CategoryStat struct {
	Category   string `json:"category"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// ResultsSummary is the overall aggregation over a user's attempt history.
// A user with no attempts gets the zero value, not an error.
type ResultsSummary struct {
	AverageScore  int            `json:"average_score"`
	TotalAttempts int            `json:"total_attempts"`
	Categories    []CategoryStat `json:"categories"`
}
