// Package board implements the minesweeper board engine: mine placement,
// neighbour counts, flood-fill reveal, flag toggling and win/loss detection.
//
// A Board is a plain value owned by one caller. It does no locking; callers
// sharing a Board between goroutines must serialize access themselves (see
// package session).
package board
