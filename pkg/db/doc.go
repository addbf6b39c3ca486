// Package db provides the PostgreSQL connection used by the content stores.
//
// Connection and request timeouts are the driver's responsibility,
// configured through the DATABASE_URL; the application layer does not
// re-implement them.
package db
