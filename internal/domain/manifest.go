package domain

// ManifestFile pairs a provider asset URL with its downloaded location.
type ManifestFile struct {
	SourceURL string `json:"source_url"`
	LocalPath string `json:"local_path"`
}

// ManifestTask is the per-task record written to manifest.json.
type ManifestTask struct {
	Index        int            `json:"index"`
	StyleKey     string         `json:"style_key"`
	TaskID       string         `json:"generation_uuid"`
	Prompt       string         `json:"prompt"`
	Status       TaskStatus     `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Files        []ManifestFile `json:"files"`
}

// Manifest aggregates every task of a run. Tasks are only ever appended.
type Manifest struct {
	RunID     string         `json:"run_id"`
	ModelUUID string         `json:"model_uuid"`
	Theme     string         `json:"theme"`
	Character string         `json:"character"`
	OutputDir string         `json:"output_dir"`
	CreatedAt string         `json:"created_at"`
	Tasks     []ManifestTask `json:"tasks"`
}

// Append adds a task record.
func (m *Manifest) Append(t ManifestTask) {
	if t.Files == nil {
		t.Files = []ManifestFile{}
	}
	m.Tasks = append(m.Tasks, t)
}

// FailureKind distinguishes why a task landed in the failure list.
type FailureKind string

const (
	FailureKindFailed      FailureKind = "failed"
	FailureKindTimeout     FailureKind = "timeout"
	FailureKindEmptyResult FailureKind = "empty_result"
	FailureKindUnknown     FailureKind = "unknown"
)

// FailedTask summarizes a task that did not produce downloadable output.
type FailedTask struct {
	StyleKey     string      `json:"style_key"`
	TaskID       string      `json:"generation_uuid"`
	Status       TaskStatus  `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Kind         FailureKind `json:"kind"`
}
