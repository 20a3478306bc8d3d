// Package doctree builds and serializes the hierarchical DataCite
// metadata document assembled from path-destination mapping rules.
//
// The document root is created lazily on the first non-empty
// assignment, pre-populated with the kernel-4 namespace declaration and
// a placeholder identifier node. Assignments walk direct children only
// and merge by tag name: two rules targeting the same path always
// collapse into one node (last text wins); sibling nodes require
// distinct intermediate segments. This aliasing behavior is load-bearing
// for existing mapping files.
package doctree
