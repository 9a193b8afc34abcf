// internal/handlers/mcp/soql_test.go
// Test builder SOQL/SOSL murni, tanpa koneksi Salesforce.

package mcp

import (
	"strings"
	"testing"
)

func TestBuildQuerySOQL(t *testing.T) {
	cases := []struct {
		name        string
		objectName  string
		fields      []string
		whereClause string
		orderBy     string
		limit       int
		want        string
	}{
		{
			name:       "minimal",
			objectName: "Account",
			fields:     []string{"Id", "Name"},
			want:       "SELECT Id, Name FROM Account",
		},
		{
			name:        "full",
			objectName:  "Opportunity",
			fields:      []string{"Id"},
			whereClause: "StageName = 'Closed Won'",
			orderBy:     "CloseDate DESC",
			limit:       10,
			want:        "SELECT Id FROM Opportunity WHERE StageName = 'Closed Won' ORDER BY CloseDate DESC LIMIT 10",
		},
		{
			name:       "limit nol dihilangkan",
			objectName: "Contact",
			fields:     []string{"Id"},
			limit:      0,
			want:       "SELECT Id FROM Contact",
		},
	}
	for _, tc := range cases {
		got := buildQuerySOQL(tc.objectName, tc.fields, tc.whereClause, tc.orderBy, tc.limit)
		if got != tc.want {
			t.Errorf("%s:\n got: %s\nwant: %s", tc.name, got, tc.want)
		}
	}
}

func TestBuildAggregateSOQL(t *testing.T) {
	got := buildAggregateSOQL(
		"Opportunity",
		[]string{"StageName", "COUNT(Id) total"},
		[]string{"StageName"},
		"Amount > 0",
		"COUNT(Id) > 5",
		"COUNT(Id) DESC",
		20,
	)
	want := "SELECT StageName, COUNT(Id) total FROM Opportunity WHERE Amount > 0" +
		" GROUP BY StageName HAVING COUNT(Id) > 5 ORDER BY COUNT(Id) DESC LIMIT 20"
	if got != want {
		t.Fatalf("\n got: %s\nwant: %s", got, want)
	}

	// Tanpa klausa optional
	got = buildAggregateSOQL("Lead", []string{"COUNT(Id) n"}, []string{"Status"}, "", "", "", 0)
	want = "SELECT COUNT(Id) n FROM Lead GROUP BY Status"
	if got != want {
		t.Fatalf("\n got: %s\nwant: %s", got, want)
	}
}

func TestEscapeSOQL(t *testing.T) {
	if got := escapeSOQL(`O'Brien \ Co`); got != `O\'Brien \\ Co` {
		t.Fatalf("escape wrong: %s", got)
	}
	if got := escapeSOQL("plain"); got != "plain" {
		t.Fatalf("plain string must pass through: %s", got)
	}
}

func TestBuildSearchSOSL(t *testing.T) {
	sosl, err := buildSearchSOSL("Acme", []map[string]any{
		{"name": "Account", "fields": []any{"Id", "Name"}},
		{"name": "Contact"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "FIND {Acme} IN ALL FIELDS RETURNING Account(Id, Name), Contact"
	if sosl != want {
		t.Fatalf("\n got: %s\nwant: %s", sosl, want)
	}

	// Term dengan karakter reserved harus di-escape.
	sosl, err = buildSearchSOSL(`a{b}"c"`, []map[string]any{{"name": "Account"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sosl, `\{b\}\"c\"`) {
		t.Fatalf("reserved chars not escaped: %s", sosl)
	}

	// Entry tanpa name adalah error.
	if _, err := buildSearchSOSL("x", []map[string]any{{"fields": []any{"Id"}}}); err == nil {
		t.Fatalf("expected error for entry without name")
	}
}

func TestApexNameFilter(t *testing.T) {
	if f, err := apexNameFilter("MyClass", ""); err != nil || f != "Name = 'MyClass'" {
		t.Fatalf("exact filter wrong: %s, %v", f, err)
	}
	// Wildcard * jadi %, exact name menang kalau dua-duanya ada.
	if f, err := apexNameFilter("", "Acct*Handler"); err != nil || f != "Name LIKE 'Acct%Handler'" {
		t.Fatalf("pattern filter wrong: %s, %v", f, err)
	}
	if f, err := apexNameFilter("Exact", "ignored*"); err != nil || f != "Name = 'Exact'" {
		t.Fatalf("exact must win over pattern: %s, %v", f, err)
	}
	if _, err := apexNameFilter("", ""); err == nil {
		t.Fatalf("expected error when both selectors absent")
	}
}
