// Package model contains the database records for portfolio content.
package model
