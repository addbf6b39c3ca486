// Package main provides the talenthub CLI: the portfolio API server plus
// the admin tooling around it.
//
// # Quick Start
//
//	# Run database migrations
//	talenthub db migrate
//
//	# Create the admin account
//	talenthub admin create --username keltoum --email keltoum@example.com
//
//	# Start the server
//	export TALENTHUB_TOKEN_SECRET=...
//	talenthub server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - TALENTHUB_TOKEN_SECRET: HMAC secret for signing credentials
//   - TALENTHUB_CONFIG_PATH: Directory holding talenthub.yml
//   - TALENTHUB_LOG_LEVEL: Log level (debug enables SQL logging)
//   - AUDIT_DATABASE_URL: Optional database for audit event persistence
package main
