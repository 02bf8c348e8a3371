// Package token provides tokenization for the formula language and its
// type annotations.
//
// [Tokenize] splits a source buffer into tokens in a single pass. Tokens
// are views into the source: Token.Bytes is a sub-slice of it, so the
// source must outlive the tokens and must not be modified while they are
// in use.
//
// [Matcher] finds delimiters in a token slice while skipping over nested
// bracket regions.
package token
