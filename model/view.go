package model

import "strings"

// View renders a value to a response body alongside its content type.
// Grounded on framework/FrameworkView.h's render()/getContentType() pair.
type View interface {
	Render(context map[string]string) (string, error)
	ContentType() string
}

// JSONView renders a Go value as a JSON document, matching JsonView.
type JSONView struct {
	payload any
}

func NewJSONView(payload any) JSONView {
	return JSONView{payload: payload}
}

func (v JSONView) Render(context map[string]string) (string, error) {
	data, err := json.Marshal(v.payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (v JSONView) ContentType() string { return "application/json" }

// TemplateView renders a string containing "{{name}}" placeholders,
// substituting values from its context map. Unknown placeholders are
// left untouched rather than erroring, since embedded callers typically
// render partial templates across several passes.
type TemplateView struct {
	template    string
	contentType string
}

func NewTemplateView(template, contentType string) TemplateView {
	if contentType == "" {
		contentType = "text/html"
	}
	return TemplateView{template: template, contentType: contentType}
}

func (v TemplateView) Render(context map[string]string) (string, error) {
	out := v.template
	for key, value := range context {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out, nil
}

func (v TemplateView) ContentType() string { return v.contentType }
