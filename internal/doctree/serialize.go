package doctree

import (
	"encoding/xml"
	"strings"
)

// Serialize renders the document as XML text. Output is deterministic:
// attributes in insertion order, children in creation order.
func Serialize(root *Element) string {
	var b strings.Builder

	writeElement(&b, root)

	return b.String()
}

func writeElement(b *strings.Builder, e *Element) {
	b.WriteByte('<')
	b.WriteString(e.Tag)

	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		escape(b, a.Value)
		b.WriteByte('"')
	}

	if e.Text == "" && len(e.Children) == 0 {
		b.WriteString(" />")
		return
	}

	b.WriteByte('>')

	if len(e.Children) > 0 {
		for _, c := range e.Children {
			writeElement(b, c)
		}
	} else {
		escape(b, e.Text)
	}

	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

func escape(b *strings.Builder, s string) {
	// xml.EscapeText is total over its input; the error return is
	// always nil for a strings.Builder.
	_ = xml.EscapeText(b, []byte(s))
}
