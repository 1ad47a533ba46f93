// Package models defines the data model for the movie collection client.
//
// [Movie] mirrors the wire format of the remote collection API. [Draft] holds
// the in-progress, not-yet-submitted form values for a new record, including
// the keystroke-level acceptance rules for the numeric rating field.
package models
