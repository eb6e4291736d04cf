// Package auth provides authentication and authorisation for FitTrack Core.
//
// It implements a 2-tier role model (user and admin) with:
//   - Argon2id password hashing (OWASP 2025 recommendation)
//   - Stateless HS256 JWT session tokens carrying identity, username, and role
//   - Static role checks (compile-time, no database lookup per request)
//   - A SQLite-backed user repository with case-sensitive unique usernames
//
// Tokens are self-contained and never stored server-side. A consequence is
// that role changes do not retroactively invalidate outstanding tokens: a
// token issued before a demotion keeps its embedded role until natural
// expiry (two hours). Stricter revocation would need token versioning or a
// server-side denylist, which this service deliberately does not carry.
package auth
