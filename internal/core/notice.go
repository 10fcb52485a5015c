package core

// Level is the severity of a Notice, used by the surfaces for styling.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is the localized result message of an action.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// IsZero reports whether n carries no message.
func (n Notice) IsZero() bool { return n.Message == "" }
