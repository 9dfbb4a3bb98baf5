// Package template provides the mail-merge template model: templates with
// {name} placeholders, per-recipient argument maps, placeholder discovery,
// and deterministic rendering to subject/HTML/plain-text triples.
//
// # Placeholders
//
// A placeholder is a {name} token in the subject or body. Discovery is
// lenient: unmatched braces and empty or whitespace-only candidates are
// skipped rather than reported as errors, because bodies routinely contain
// literal braces pasted from rich text.
//
// # Rendering
//
// Rendering is pure and infallible. Substitution is fail-open: a placeholder
// whose name is missing from the recipient's argument map is left in place
// as the literal {name} token, so incomplete personalization is visible in
// previews instead of silently blank.
//
//	tmpl := template.New("welcome")
//	tmpl.Subject = "Hi {name}"
//	tmpl.Body = "Hello <b>{name}</b> from {company}"
//
//	msg := template.Render(tmpl, map[string]string{"name": "Dan"})
//	// msg.Subject == "Hi Dan"
//	// msg.Text    == "Hello Dan from {company}"
//
// # Plain-text fallback
//
// The plain-text alternative is derived from the rendered body with a
// documented minimal rule set: block-level boundaries (<br>, </p>, </div>,
// </li>, closing headings, </tr>) become single newlines, remaining markup
// is stripped, and standard character entities are decoded. See HTMLToText.
package template
