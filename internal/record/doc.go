// Package record orchestrates one row's transformation: it runs every
// mapping rule in order, routes interpolated values either into the
// shared document tree or into flat metadata fields, and finalizes the
// document into the reserved "datacite" record key.
package record
