package models

// SourceResult reports how many entries one vocabulary file contributed.
type SourceResult struct {
	File  string `json:"file"`
	Added int    `json:"added"`
}

type Result struct {
	Sources []SourceResult `json:"sources"`
	Output  string         `json:"output"`
	Stats   struct {
		TotalWords  int `json:"totalWords"`
		Blacklisted int `json:"blacklisted"`
		Cards       int `json:"cards"`
		TimeElapsed int `json:"timeElapsedMs"`
	} `json:"stats"`
}
