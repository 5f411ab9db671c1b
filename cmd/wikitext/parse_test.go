package main

import (
	"strings"
	"testing"

	"wikitext/internal/driver"
)

func TestRenderTree_Formats(t *testing.T) {
	tree, err := driver.Parse("hello ''world''\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cases := []struct {
		format string
		want   string
	}{
		{"pretty", "document"},
		{"json", `"type": "document"`},
		{"yaml", "type: document"},
		{"tree", "document"},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			var b strings.Builder
			if err := renderTree(&b, tree, tc.format, false); err != nil {
				t.Fatalf("renderTree(%s): %v", tc.format, err)
			}
			if !strings.Contains(b.String(), tc.want) {
				t.Fatalf("output %q is missing %q", b.String(), tc.want)
			}
		})
	}
}

func TestRenderTree_UnknownFormat(t *testing.T) {
	tree, err := driver.Parse("x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var b strings.Builder
	rerr := renderTree(&b, tree, "bogus", false)
	if rerr == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !strings.Contains(rerr.Error(), "unknown format: bogus") {
		t.Fatalf("error = %q, want it to name the format", rerr)
	}
}
