// Package events holds the holiday/vacation/special-event reference index.
//
// The index is loaded once from a CSV of (Date, Type) rows at process start
// and is read-only afterwards, so concurrent requests may query it without
// coordination. A missing reference file yields an empty index, never an
// error: the pipeline then emits all-zero event indicators with the same
// shape as the populated case.
package events
