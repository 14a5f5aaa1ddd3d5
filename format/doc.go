// Package format names the output formats supported by encode.
package format
