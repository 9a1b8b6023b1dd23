package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archbell/picoframework/model"
)

func TestJSONViewRendersPayload(t *testing.T) {
	v := model.NewJSONView(map[string]any{"status": "ok"})
	body, err := v.Render(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, body)
	assert.Equal(t, "application/json", v.ContentType())
}

func TestTemplateViewSubstitutesPlaceholders(t *testing.T) {
	v := model.NewTemplateView("hello {{name}}, temp is {{temp}}C", "")
	body, err := v.Render(map[string]string{"name": "lab", "temp": "21"})
	require.NoError(t, err)
	assert.Equal(t, "hello lab, temp is 21C", body)
	assert.Equal(t, "text/html", v.ContentType())
}

func TestTemplateViewLeavesUnknownPlaceholders(t *testing.T) {
	v := model.NewTemplateView("{{known}} and {{unknown}}", "text/plain")
	body, err := v.Render(map[string]string{"known": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x and {{unknown}}", body)
}
