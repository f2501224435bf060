package pokeapi

// Package pokeapi implements the HTTP client for the public PokeAPI. It
// fetches one Pokemon record per request, downloads and decodes sprite
// images, and reports failures as typed errors (network, http, decode).
