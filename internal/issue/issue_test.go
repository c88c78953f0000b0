// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func allIds() []Id {
	return []Id{
		HomeNotSetId,
		CommandNotValidId,
		AmbiguousCommandId,
		InterpreterNotSetId,
		MultiLineAliasId,
		MissingAliasArgumentId,
		SpawnFailedId,
		ConfigLoadFailedId,
		DirectorySetupFailedId,
	}
}

func TestIssuesMapCompleteness(t *testing.T) {
	t.Parallel()

	ids := allIds()
	if HomeNotSetId != 1 {
		t.Errorf("HomeNotSetId = %d, want 1", HomeNotSetId)
	}
	for _, id := range ids {
		iss := Get(id)
		if iss == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty markdown", id)
		}
	}
	if got := len(Values()); got != len(ids) {
		t.Errorf("len(Values()) = %d, want %d", got, len(ids))
	}
}

func TestValues_SortedById(t *testing.T) {
	t.Parallel()

	values := Values()
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Fatalf("Values() not sorted at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	if Get(Id(9999)) != nil {
		t.Error("Get(9999) should return nil")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	for _, iss := range Values() {
		out, err := iss.Render("notty")
		if err != nil {
			t.Errorf("Render(%d) error: %v", iss.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("Render(%d) produced empty output", iss.Id())
		}
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	t.Parallel()

	iss := &Issue{
		id:       HomeNotSetId,
		mdMsg:    "# Title",
		docLinks: []HttpLink{"https://example.com/docs"},
	}
	out, err := iss.Render("notty")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "See also") || !strings.Contains(out, "https://example.com/docs") {
		t.Errorf("Render() missing links:\n%s", out)
	}

	links := iss.DocLinks()
	links[0] = "mutated"
	if iss.docLinks[0] != "https://example.com/docs" {
		t.Error("DocLinks() must return a copy")
	}
}

func TestHomeNotSet_MentionsVariable(t *testing.T) {
	t.Parallel()

	if !strings.Contains(string(Get(HomeNotSetId).MarkdownMsg()), "BS_HOME") {
		t.Error("home issue should mention BS_HOME")
	}
}
