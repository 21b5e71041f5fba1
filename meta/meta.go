// meta/meta.go
package meta

// MAX_TURNS caps the turns of a self-play game.
const MAX_TURNS = 300

// GAMES is the number of games per experiment match-up.
const GAMES = 10

// SEARCH_DEPTH is the default look-ahead in turns.
const SEARCH_DEPTH = 2
