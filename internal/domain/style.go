package domain

// StyleProfile describes how prompts are built for one style key.
type StyleProfile struct {
	Key        string
	Subjects   []string
	Scenes     []string
	StyleNotes []string
	Scope      string
}

// StyleDisplay holds gallery-facing metadata for a style.
type StyleDisplay struct {
	Title    string
	Alt      string
	StyleTag string
}
