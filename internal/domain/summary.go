package domain

// Entry is one key/count pair of a ranked histogram
type Entry struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// KeywordTotals holds the four keyword counters for output
type KeywordTotals struct {
	Info    int64 `json:"info"`
	Error   int64 `json:"error"`
	Warning int64 `json:"warning"`
	Debug   int64 `json:"debug"`
}

// Get returns the total for a keyword, 0 for unknown markers
func (k KeywordTotals) Get(kw Keyword) int64 {
	switch kw {
	case KeywordInfo:
		return k.Info
	case KeywordError:
		return k.Error
	case KeywordWarning:
		return k.Warning
	case KeywordDebug:
		return k.Debug
	default:
		return 0
	}
}

// Report is the finalized, read-only view of one analysis run
type Report struct {
	Type          string `json:"type"`          // Always "analysis"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility

	Mode    string   `json:"mode"` // "serial" or "parallel"
	Workers int      `json:"workers"`
	Files   []string `json:"files,omitempty"`

	Lines        int64         `json:"lines"`
	Keywords     KeywordTotals `json:"keywords"`
	UniqueIPs    int           `json:"uniqueIps"`
	UniqueErrors int           `json:"uniqueErrorMessages"`

	TopN           int     `json:"topN"`
	TopIPs         []Entry `json:"topIps"`
	TopErrors      []Entry `json:"topErrorMessages"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{
		Type:      "analysis",
		TopIPs:    []Entry{},
		TopErrors: []Entry{},
	}
}

// ErrorOutput represents a structured error for NDJSON output
type ErrorOutput struct {
	Type          string `json:"type"`          // Always "error"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility
	Code          string `json:"code"`          // Machine-readable error code
	Message       string `json:"message"`       // Human-readable message
	Hint          string `json:"hint,omitempty"`
}

// NewErrorOutput creates a new error output
// Note: SchemaVersion should be set by the caller (output package)
func NewErrorOutput(code, message string) *ErrorOutput {
	return &ErrorOutput{
		Type:    "error",
		Code:    code,
		Message: message,
	}
}
