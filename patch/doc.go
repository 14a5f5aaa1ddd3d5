// Package patch applies JSON Patch (RFC 6902) and JSON merge patch
// (RFC 7386) documents to nodes.
//
// Nodes are encoded, patched with github.com/evanphx/json-patch and parsed
// back, so object fields of the result come out in sorted order.
package patch

import "errors"

var ErrPatch = errors.New("patch error")
