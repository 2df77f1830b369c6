// Package edit adds row editing on top of a table.
//
// A Store owns the rows. Vec renders them through a table.Table and, while
// a row is being edited, draws an Editor over the cells of that row. State
// runs the editing state machine:
//
//	View --EditNew--> Insert --Commit/Cancel--> View
//	View --Edit-----> Edit   --Commit/Cancel--> View
//
// EditNew inserts a placeholder row that Cancel removes again. Edit works
// on a copy, so Cancel simply drops it. While editing, input focus is
// locked on the editor and the table ignores keys.
//
// Transitions that are not legal in the current mode are ignored and
// return no error. Errors only come from the Editor, or from a row index
// outside the store, and leave the mode unchanged.
package edit
