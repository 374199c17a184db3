package cli

import "testing"

func TestListBundledTopics(t *testing.T) {
	topics, err := listBundledTopics()
	if err != nil {
		t.Fatalf("listBundledTopics: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no bundled topics")
	}

	byID := make(map[string]string)
	for _, topic := range topics {
		if topic.Title == "" {
			t.Errorf("topic %q has no title", topic.ID)
		}
		byID[topic.ID] = topic.Title
	}
	for _, want := range []string{"getting-started", "log-format", "configuration"} {
		if _, ok := byID[want]; !ok {
			t.Errorf("missing topic %q", want)
		}
	}
}

func TestDocTitle(t *testing.T) {
	if got := docTitle("intro\n\n# Log Format\n\nbody", "x"); got != "Log Format" {
		t.Errorf("docTitle = %q, want Log Format", got)
	}
	if got := docTitle("no heading here", "fallback"); got != "fallback" {
		t.Errorf("docTitle fallback = %q", got)
	}
}
