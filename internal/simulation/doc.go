// Package simulation implements the sprint simulation engine: a five stage
// state machine over a feature backlog, a deterministic priority scorer, a
// sprint backlog and a three column kanban board.
//
// All state lives in a State value. Every mutation is expressed as an Action
// and applied by Reduce, which returns a new State and never modifies its
// input. Readers holding an older State therefore never observe a partially
// applied action.
package simulation
