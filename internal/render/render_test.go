package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joseph-ayodele/homepage/internal/entity"
)

func testProfile() entity.Profile {
	return entity.Profile{
		Name:      "Alice",
		Title:     "Engineer",
		About:     "Builds things.",
		Skills:    []string{"Go", "SQL"},
		Email:     "alice@example.com",
		LinkedIn:  "https://www.linkedin.com/in/alice",
		Twitter:   "https://twitter.com/alice",
		GitHub:    "https://github.com/alice",
		Portfolio: []entity.Project{{Title: "Homepage", Description: "This site"}},
	}
}

func TestHomeRendersProfileAndEntries(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var buf bytes.Buffer
	entries := []*entity.Entry{{ID: 7, SenderName: "Bob", Message: "Nice site"}}
	if err := r.Home(&buf, testProfile(), entries); err != nil {
		t.Fatalf("render home: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<h1>Alice</h1>", "Engineer", "<li>Go</li>", "<strong>Homepage</strong>",
		"Bob:", "Nice site", `action="/delete/7"`, "alice@example.com",
		`href="https://github.com/alice"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home page missing %q", want)
		}
	}
	if strings.Contains(html, "No messages yet.") {
		t.Errorf("empty-state text shown with entries present")
	}
}

func TestHomeEmptyState(t *testing.T) {
	r, _ := New()
	var buf bytes.Buffer
	if err := r.Home(&buf, testProfile(), nil); err != nil {
		t.Fatalf("render home: %v", err)
	}
	if !strings.Contains(buf.String(), "No messages yet.") {
		t.Errorf("expected empty-state text")
	}
}

func TestHomeEscapesEntries(t *testing.T) {
	r, _ := New()
	var buf bytes.Buffer
	entries := []*entity.Entry{{ID: 1, SenderName: "<script>x</script>", Message: "a & b"}}
	if err := r.Home(&buf, testProfile(), entries); err != nil {
		t.Fatalf("render home: %v", err)
	}
	html := buf.String()
	if strings.Contains(html, "<script>x</script>") {
		t.Errorf("entry markup must be escaped")
	}
	if !strings.Contains(html, "a &amp; b") {
		t.Errorf("expected escaped ampersand")
	}
}

func TestAboutRendersProfileOnly(t *testing.T) {
	r, _ := New()
	var buf bytes.Buffer
	if err := r.About(&buf, testProfile()); err != nil {
		t.Fatalf("render about: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "About Alice") || !strings.Contains(html, "Builds things.") {
		t.Errorf("about page missing profile fields")
	}
	if strings.Contains(html, "Guestbook") || strings.Contains(html, "/delete/") {
		t.Errorf("about page must not show guestbook entries")
	}
}
