// Package game models a small role-playing party: player characters with
// health and weapons, a boss whose special attacks combine into one power
// figure, and a GameState aggregate that applies party-wide events.
//
// Nothing here is safe for concurrent use. A GameState is built by the
// caller, passed to whatever needs it and dropped afterwards.
package game
