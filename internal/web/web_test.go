package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesRender(t *testing.T) {
	tmpl := Templates()

	for _, name := range []string{"index.html", "login.html", "dashboard.html"} {
		require.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "dashboard.html", map[string]any{
		"Title":    "Dashboard",
		"UserName": "Guest",
		"Error":    "Invalid or missing input fields.",
		"Fields":   []string{"name", "date"},
		"Appointments": []map[string]any{
			{"ID": 1, "Name": "<b>Alice</b>", "Date": "2024-06-01"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Welcome, Guest.")
	assert.Contains(t, out, "(name, date)")
	assert.Contains(t, out, "&lt;b&gt;Alice&lt;/b&gt;")
}
