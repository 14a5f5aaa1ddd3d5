// Package libdiff computes structural differences between JSON documents.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	for i := range changes {
//	    fmt.Println(changes[i].String())
//	}
//	patched, err := libdiff.Apply(oldNode, changes)
//	restored, err := libdiff.Apply(patched, libdiff.Reverse(changes))
//
// Object fields and array elements are aligned with a sequence diff, so
// reordering a few fields or inserting an element in the middle of an
// array produces few changes.  Strings which differ only slightly are
// reported as text edits.
//
// # Related Packages
//
//   - github.com/signadot/jv/ir - node representation
//   - github.com/signadot/jv/patch - JSON Patch and merge patch
package libdiff
