package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// HasCritical reports whether any message in msgs is CRITICAL.
func HasCritical(msgs []CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == LevelCritical {
			return true
		}
	}
	return false
}
