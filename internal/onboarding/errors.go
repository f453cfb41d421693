package onboarding

// BaseField keys messages that do not belong to a single field.
const BaseField = "base"

// Errors collects validation messages keyed by field name.
type Errors map[string][]string

// Add appends a message under field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// AddBase appends a general-purpose message.
func (e Errors) AddBase(msg string) {
	e.Add(BaseField, msg)
}

// Merge copies all messages from other into e.
func (e Errors) Merge(other map[string][]string) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

// Empty reports whether no message has been recorded.
func (e Errors) Empty() bool {
	return len(e) == 0
}
