// Package product holds the catalogue entry shown on the products screen.
//
// Products are owned by the external store. This system reads them, flags low
// stock and deletes them; it never edits them.
package product
