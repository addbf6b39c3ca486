// Package server provides the HTTP server for the portfolio API.
//
// This package implements the core HTTP server that handles all REST API
// requests. It uses gorilla/mux for routing and attaches the identity
// middleware, which resolves bearer credentials without ever rejecting a
// request; authorization decisions belong to individual handlers.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, codec)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the public read surface (profile, projects, skills,
// experiences, portfolio, status), the login endpoint, and the guarded
// mutation endpoints.
package server
