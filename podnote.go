// Package podnote turns podcast episode pages into markdown notes.
// It resolves Spotify and Apple Podcasts episode URLs, fetches the page,
// reads its Open Graph metadata, and renders a user template that is either
// inserted at the editor cursor or written to a new note.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, yaml/).
package podnote
