package sparql2html

import (
	"bytes"
	"fmt"
	"html"
)

// Fixed document parts. Attribute values use single quotes throughout.
const (
	htmlPreamble = "<html><head>\n" +
		"<style type='text/css'>* { font-family: arial,helvetica; }</style>\n" +
		"</head><body>\n" +
		"<table border='1' style='border: 1px solid; border-collapse: collapse;'>\n"
	htmlClosing = "</table></body></html>\n"

	headerRowEnd       = "</tr>\n"
	legacyHeaderRowEnd = "</td>\n"
)

// renderer writes the HTML table layout.
type renderer struct {
	columns      Columns
	headers      Headers
	escape       bool
	legacyHeader bool
}

// Render renders rs as an HTML document. It fails with ErrMissingField if a
// binding lacks one of the column variables; nothing is returned in that case.
func (c *Converter) Render(rs *ResultSet) ([]byte, error) {
	if rs == nil {
		return nil, fmt.Errorf("%w: nil result set", ErrSchemaMismatch)
	}
	var buf bytes.Buffer
	if err := c.renderer.render(&buf, rs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *renderer) render(buf *bytes.Buffer, rs *ResultSet) error {
	buf.Grow(len(htmlPreamble) + len(htmlClosing) + 128*(len(rs.Results.Bindings)+1))

	buf.WriteString(htmlPreamble)
	r.writeHeader(buf)

	for i, b := range rs.Results.Bindings {
		if err := r.writeRow(buf, b); err != nil {
			return fmt.Errorf("%w: binding %d: %v", ErrMissingField, i, err)
		}
	}

	buf.WriteString(htmlClosing)
	return nil
}

func (r *renderer) writeHeader(buf *bytes.Buffer) {
	buf.WriteString("<tr><th>")
	buf.WriteString(r.text(r.headers.Text))
	buf.WriteString("</th><th>")
	buf.WriteString(r.text(r.headers.Description))
	buf.WriteString("</th>")
	if r.legacyHeader {
		buf.WriteString(legacyHeaderRowEnd)
	} else {
		buf.WriteString(headerRowEnd)
	}
}

func (r *renderer) writeRow(buf *bytes.Buffer, b Binding) error {
	link, ok := b[r.columns.Link]
	if !ok {
		return fmt.Errorf("variable %q: missing", r.columns.Link)
	}
	text, ok := b[r.columns.Text]
	if !ok {
		return fmt.Errorf("variable %q: missing", r.columns.Text)
	}
	desc, ok := b[r.columns.Description]
	if !ok {
		return fmt.Errorf("variable %q: missing", r.columns.Description)
	}

	buf.WriteString("<tr><td><a href='")
	buf.WriteString(r.text(link.Value))
	buf.WriteString("'>")
	buf.WriteString(r.text(text.Value))
	buf.WriteString("</a></td><td>")
	buf.WriteString(r.text(desc.Value))
	buf.WriteString("</td></tr>\n")
	return nil
}

// text returns s unchanged unless escaping is enabled.
// html.EscapeString also escapes single quotes, so it is safe for the
// single-quoted href attribute.
func (r *renderer) text(s string) string {
	if !r.escape {
		return s
	}
	return html.EscapeString(s)
}
