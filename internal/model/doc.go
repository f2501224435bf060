package model

// Package model defines domain data structures used across the app: the
// Pokemon record decoded from the PokeAPI and the fetch status enum.
// Structures are designed for direct rendering in the UI and explicit
// state transitions.
