package domain

// Keyword is a literal marker searched for in every line
type Keyword string

const (
	KeywordInfo    Keyword = "INFO"
	KeywordError   Keyword = "ERROR"
	KeywordWarning Keyword = "WARNING"
	KeywordDebug   Keyword = "DEBUG"
)

// Keywords lists the markers in report order
var Keywords = []Keyword{KeywordInfo, KeywordError, KeywordWarning, KeywordDebug}

// Record is the whitespace-delimited schema DATE TIME LEVEL IP MESSAGE...
type Record struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Level   string `json:"level"`
	IP      string `json:"ip"`
	Message string `json:"message"`
}

// Observation is the result of classifying a single line.
// Empty IP or ErrorMessage means the value was not extracted.
type Observation struct {
	Info    bool
	Error   bool
	Warning bool
	Debug   bool

	IP           string
	ErrorMessage string
}

// HasIP reports whether an IP token was extracted
func (o Observation) HasIP() bool {
	return o.IP != ""
}

// HasErrorMessage reports whether an error message was extracted
func (o Observation) HasErrorMessage() bool {
	return o.ErrorMessage != ""
}

// Matched reports whether the observation carries the given keyword
func (o Observation) Matched(k Keyword) bool {
	switch k {
	case KeywordInfo:
		return o.Info
	case KeywordError:
		return o.Error
	case KeywordWarning:
		return o.Warning
	case KeywordDebug:
		return o.Debug
	default:
		return false
	}
}
