// Package ui implements the interactive form-and-table interface using bubbletea's Elm architecture.
//
// The TUI is a single record-management screen with sub-views:
//  1. [TableView] : the fetched movie collection, one row per record
//  2. [FormView] : the four-field draft for a new movie
//  3. [ConfirmView] : blocking yes/no prompt before a delete
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. The
// displayed collection is a local cache of the last successful fetch:
// replaced wholesale on load, appended on a successful create, pruned on a
// successful delete. List, create, and delete requests race independently;
// the last writer wins on the cached list.
//
// A successful create shows a transient notice that self-clears after two
// seconds. The expiry tick carries a sequence number so a notice superseded
// by a newer one cannot be cleared by a stale tick.
//
// When the session provider reports an error or no authenticated session,
// the screen degrades to an error panel with no recovery action.
package ui
