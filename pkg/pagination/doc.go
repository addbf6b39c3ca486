// Package pagination implements cursor-based pagination over
// collections with a fixed (start_date DESC, id ASC) sort order.
//
// Cursors are opaque to clients: a base64url encoding of the sort key
// of the record they point at. A page is fetched by asking the backing
// store for one record more than requested, which answers hasNextPage
// without a second query.
package pagination
