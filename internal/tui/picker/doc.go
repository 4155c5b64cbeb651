// Package picker provides a generic single-choice list for Bubble Tea programs.
//
// The picker owns only its cursor. The parent model forwards key messages while
// the picker is open and reacts to the ChosenMsg or CanceledMsg it returns as a
// command.
package picker
