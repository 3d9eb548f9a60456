// Package auth provides user registration, credential verification and
// cookie-based session management for the web UI.
//
// Passwords are stored as bcrypt hashes. Sessions are opaque tokens persisted
// server-side in SQLite via scs; the browser only ever holds the token cookie.
// Protected routes are gated by Middleware.RequireAuth, which redirects
// unauthenticated browsers to the login page instead of returning an error.
package auth
