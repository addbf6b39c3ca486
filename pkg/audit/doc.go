// Package audit provides audit logging for security-relevant operations.
//
// Events cover authentication attempts, content mutations and password
// changes. Each event is written as an RFC5424 syslog line and, when
// AUDIT_DATABASE_URL is set, persisted to the audit_events table.
package audit
