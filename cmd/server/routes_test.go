package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JaimeStill/chargepoint/web/app"
)

func TestPrintRoutes(t *testing.T) {
	var buf bytes.Buffer
	if err := printRoutes(&buf, app.Routes); err != nil {
		t.Fatalf("printRoutes() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("lines = %d, want header plus 6 routes:\n%s", len(lines), buf.String())
	}

	tests := []struct {
		line   int
		fields []string
	}{
		{0, []string{"PATH", "NAME", "TARGET", "AUTH"}},
		{1, []string{"/", "-", "->", "/home"}},
		{2, []string{"/home", "home", "home.html"}},
		{3, []string{"/login", "login", "login.html"}},
		{4, []string{"/register", "register", "register.html"}},
		{5, []string{"/profile", "profile", "profile.html", "required"}},
		{6, []string{"/stations", "stations", "stations.html", "required"}},
	}

	for _, tt := range tests {
		got := strings.Fields(lines[tt.line])
		if strings.Join(got, " ") != strings.Join(tt.fields, " ") {
			t.Errorf("line %d = %q, want fields %v", tt.line, lines[tt.line], tt.fields)
		}
	}
}

func TestRootCmd_Routes(t *testing.T) {
	root := newRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"routes"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "/stations") {
		t.Errorf("output = %q, want route listing", buf.String())
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate", "routes", "seed"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestRootCmd_MigrateInvalidDirection(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"migrate", "sideways"})

	if err := root.Execute(); err == nil {
		t.Error("Execute() succeeded with invalid direction, want error")
	}
}
