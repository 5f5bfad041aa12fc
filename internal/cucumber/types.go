package cucumber

// FeatureJSON is one feature of a cucumber JSON report.
type FeatureJSON struct {
	URI      string        `json:"uri"`
	Name     string        `json:"name"`
	Tags     []TagJSON     `json:"tags"`
	Elements []ElementJSON `json:"elements"`
}

// ElementJSON is a scenario or background of a feature.
type ElementJSON struct {
	Name    string     `json:"name"`
	Type    string     `json:"type"`
	Line    int        `json:"line"`
	Tags    []TagJSON  `json:"tags"`
	Steps   []StepJSON `json:"steps"`
	Keyword string     `json:"keyword"`
}

// TagJSON is a tag as written in the feature file, including the "@".
type TagJSON struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// StepJSON captures step status information.
type StepJSON struct {
	Result ResultJSON `json:"result"`
}

// ResultJSON contains a step execution status.
type ResultJSON struct {
	Status string `json:"status"`
}
