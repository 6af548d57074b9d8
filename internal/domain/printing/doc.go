// Package printing contains the document generation core: fixed-width layout
// for receipt stock, name abbreviation, ticket/bill rendering, and the
// delivery audit record.
package printing
