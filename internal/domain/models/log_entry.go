package models

// LogEntry is a line posted by the browser extension
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// LogTail is the response of the log viewer
type LogTail struct {
	Environment string   `json:"environment"`
	Entries     []string `json:"entries"`
}
