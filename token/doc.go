// Package token provides tokenization support for JSON text.
//
// [Tokenizer] produces tokens on demand from an in memory document.  Numbers
// are returned as their source text and strings are unescaped while they are
// scanned.  Errors are [TokenizeErr] values wrapping one of the reason
// sentinels such as [ErrUnexpectedEOF] or [ErrBadEscape].
//
// [Quote] and [Unquote] convert between Go strings and JSON string literals.
package token
