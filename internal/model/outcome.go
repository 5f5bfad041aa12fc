package model

// Story identifies the user story a test belongs to.
type Story struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

// StoryCalled returns a story with the given name.
func StoryCalled(name string) *Story {
	return &Story{Name: name}
}

// TestOutcome carries the parts of a test result that tag derivation reads.
type TestOutcome struct {
	// Name is the test method name, possibly with a data-driven suffix.
	Name string `json:"name"`
	// TestCase is the qualified test case name; empty when unknown.
	TestCase  string   `json:"test_case,omitempty"`
	Path      string   `json:"path,omitempty"`
	UserStory *Story   `json:"user_story,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	// Result is the runner's status, such as "passed" or "failed".
	Result string `json:"result,omitempty"`
}

// ForTest builds an outcome for a method of a test case.
func ForTest(method, testCase string) TestOutcome {
	return TestOutcome{Name: method, TestCase: testCase}
}
