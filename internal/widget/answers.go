package widget

// Answer keys shared by the prompt builder and the spec merge.
const (
	KeyUpgrade       = "upgrade"
	KeyWidgetName    = "widgetName"
	KeyDescription   = "description"
	KeyVersion       = "version"
	KeyAuthor        = "author"
	KeyCopyright     = "copyright"
	KeyLicense       = "license"
	KeyBoilerplate   = "boilerplate"
	KeyWidgetOptions = "widgetoptions"
	KeyBuilder       = "builder"
)

// Answers maps question keys to answer values. Values are string, bool or
// []string depending on the question type.
type Answers map[string]any

// String returns the answer as a string, or "" when absent or not a string.
func (a Answers) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Bool returns the answer as a bool, or false when absent.
func (a Answers) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// Strings returns a multi-select answer.
func (a Answers) Strings(key string) []string {
	s, _ := a[key].([]string)
	return s
}

// Has reports whether the question was answered at all.
func (a Answers) Has(key string) bool {
	_, ok := a[key]
	return ok
}
