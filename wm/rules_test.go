package wm

import "testing"

func TestRuleMatches(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		class string
		title string
		want  bool
	}{
		{"empty rule never matches", Rule{}, "Firefox", "", false},
		{"class only matches any title", Rule{Class: "Firefox"}, "Firefox", "anything", true},
		{"class mismatch", Rule{Class: "Firefox"}, "Chromium", "", false},
		{"class and title both match", Rule{Class: "Firefox", Title: "Mozilla Firefox"}, "Firefox", "Mozilla Firefox", true},
		{"class matches but title mismatches", Rule{Class: "Firefox", Title: "Mozilla Firefox"}, "Firefox", "Private Browsing", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.Matches(tc.class, tc.title); got != tc.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tc.class, tc.title, got, tc.want)
			}
		})
	}
}

func TestMatchRuleReturnsFirstMatch(t *testing.T) {
	rules := []Rule{
		{Class: "Firefox", Workspace: 2},
		{Class: "Firefox", Workspace: 3},
	}
	got := matchRule(rules, "Firefox", "")
	if got == nil || got.Workspace != 2 {
		t.Fatalf("matchRule = %+v, want the first matching rule", got)
	}
}

func TestMatchRuleNoMatch(t *testing.T) {
	rules := []Rule{{Class: "Firefox"}}
	if got := matchRule(rules, "Chromium", ""); got != nil {
		t.Errorf("matchRule = %+v, want nil", got)
	}
}
