package doctree

// DataCite kernel-4 schema constants for the lazily created root.
const (
	Namespace      = "http://datacite.org/schema/kernel-4"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = Namespace + " http://schema.datacite.org/meta/kernel-4/metadata.xsd"

	// identifierTypeAttr marks the identifier node resolved at
	// finalization time.
	identifierTypeAttr = "identifierType"

	// placeholderID is the sentinel the registrar replaces with the
	// assigned identifier.
	placeholderID = "(:tba)"
)

// Attr is a single attribute. Attribute order is insertion order.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the document: a tag with ordered attributes
// and either text content or child elements, never both.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// SetAttr sets or overwrites an attribute, preserving first-set order.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}

	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the named attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// child returns the first direct child with the given tag, or nil.
// The search is not recursive; same-named nodes deeper in the tree are
// unaffected by merging.
func (e *Element) child(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}

	return nil
}

// newRoot builds the fixed root layout: the resource element with its
// namespace declarations and the placeholder identifier child.
func newRoot() *Element {
	identifier := &Element{Tag: "identifier", Text: placeholderID}
	identifier.SetAttr(identifierTypeAttr, placeholderID)

	root := &Element{Tag: "resource"}
	root.SetAttr("xmlns", Namespace)
	root.SetAttr("xmlns:xsi", xsiNamespace)
	root.SetAttr("xsi:schemaLocation", schemaLocation)
	root.Children = append(root.Children, identifier)

	return root
}
