package markdown_test

import (
	"strings"
	"testing"

	"mindmate/internal/platform/markdown"
)

type noteMeta struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Count int    `yaml:"count"`
}

func TestRenderKeepsFieldOrderAndSplitReadsItBack(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.Render(noteMeta{ID: "n1", Title: "Вечер", Count: 3}, "# Body\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\nid: n1\ntitle: Вечер\ncount: 3\n---\n") {
		t.Fatalf("unexpected frontmatter layout:\n%s", rendered)
	}

	got := noteMeta{}
	body, err := markdown.Split(rendered, &got)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if got.ID != "n1" || got.Count != 3 || body != "# Body\n" {
		t.Fatalf("unexpected split result: %+v body=%q", got, body)
	}
}

func TestSplitWithoutFrontmatterAndBrokenSeparator(t *testing.T) {
	t.Parallel()
	meta := noteMeta{}
	body, err := markdown.Split("plain text", &meta)
	if err != nil || body != "plain text" {
		t.Fatalf("expected passthrough, got %q %v", body, err)
	}
	if _, err := markdown.Split("---\nid: x\n", &meta); err == nil {
		t.Fatalf("missing closing separator must fail")
	}
}
