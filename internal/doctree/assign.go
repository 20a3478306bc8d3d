package doctree

import (
	"regexp"
	"strings"

	"metabatch/internal/diagnostic"
	"metabatch/internal/interp"
)

// relPathRe matches relative paths inside structured values: segments
// of word characters or "." (stay at the current node), with an
// optional trailing attribute.
var relPathRe = regexp.MustCompile(`^(\w+|[.])(/(\w+|[.]))*(@\w+)?$`)

// Assign places value at path within the document rooted at root,
// creating the root on the first non-empty assignment. path is an
// absolute destination of the form /resource/seg(/seg)*(@attr)?.
// The possibly new root is returned.
//
// An empty (post-trim) text value is a total no-op: no nodes are
// created or mutated, including the root itself.
func Assign(root *Element, path string, value interp.Value) (*Element, error) {
	if t, ok := value.(interp.Text); ok && strings.TrimSpace(string(t)) == "" {
		return root, nil
	}

	if root == nil {
		root = newRoot()
	}

	rel := strings.TrimPrefix(strings.TrimPrefix(path, "/resource"), "/")
	if err := assign(root, rel, value); err != nil {
		return root, err
	}

	return root, nil
}

// assign resolves rel against node and sets value there. Structured
// values recurse per entry, in order, so one mapping rule can
// materialize an arbitrarily deep subtree.
func assign(node *Element, rel string, value interp.Value) error {
	switch v := value.(type) {
	case interp.Text:
		trimmed := strings.TrimSpace(string(v))
		if trimmed == "" {
			// Short-circuit before any descent side effects.
			return nil
		}

		value = interp.Text(trimmed)
	case interp.Children:
		for _, entry := range v {
			if !relPathRe.MatchString(entry.Path) {
				return diagnostic.Newf(diagnostic.KindTreeAssembly,
					"invalid relative path %q in structured value", entry.Path)
			}
		}
	default:
		return diagnostic.New(diagnostic.KindExpression, "unsupported interpolation value")
	}

	segments, attr := cutAttr(rel)

	cur := node
	for _, segment := range strings.Split(segments, "/") {
		if segment == "" || segment == "." {
			continue
		}

		next := cur.child(segment)
		if next == nil {
			next = &Element{Tag: segment}
			cur.Children = append(cur.Children, next)
		}

		cur = next
	}

	if attr != "" {
		t, ok := value.(interp.Text)
		if !ok {
			return diagnostic.Newf(diagnostic.KindExpression,
				"attribute %s requires a string value", attr)
		}

		cur.SetAttr(attr, string(t))

		return nil
	}

	switch v := value.(type) {
	case interp.Text:
		cur.Text = string(v)
	case interp.Children:
		for _, entry := range v {
			if err := assign(cur, entry.Path, entry.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

// cutAttr splits a trailing @attr off a path, if present.
func cutAttr(path string) (segments, attr string) {
	segments, attr, _ = strings.Cut(path, "@")
	return segments, attr
}

// Finalize resolves the identifier-type placeholder once all rules have
// run. Exactly one direct child of root must carry the identifier-type
// attribute; its value becomes ARK or DOI depending on the shoulder (or
// prior identifier) prefix.
func Finalize(root *Element, shoulder string) error {
	var found []*Element

	for _, c := range root.Children {
		if _, ok := c.Attr(identifierTypeAttr); ok {
			found = append(found, c)
		}
	}

	if len(found) != 1 {
		return diagnostic.Newf(diagnostic.KindTreeAssembly,
			"expected exactly one node with an %s attribute, found %d", identifierTypeAttr, len(found))
	}

	identifierType := "DOI"
	if strings.HasPrefix(shoulder, "ark:/") {
		identifierType = "ARK"
	}

	found[0].SetAttr(identifierTypeAttr, identifierType)

	return nil
}
