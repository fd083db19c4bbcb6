// Package todolist is an example feature built with the action and reducer packages.
//
// It keeps a list of items in a full-replace reducer and the status of a remote sync
// in a shallow-merge-append reducer. The sync is modeled as a Lifecycle (start/success/fail);
// running it is up to the caller, this package only describes its phases.
package todolist
