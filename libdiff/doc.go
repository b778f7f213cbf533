// Package libdiff computes structural diffs between configuration
// documents. A diff is itself a document: differing leaves become
// {"~from": x, "~to": y} objects, objects align their fields with
// text diffing over rune-mapped field names, arrays compare
// positionally. A nil diff means the documents are equal.
package libdiff
