// Package vcard implements a codec between flat contact records and
// vCard 3.0 text. It covers the property set needed for tabular contact
// exchange (N, FN, TEL, EMAIL, ORG, TITLE, ADR, NOTE) and deliberately
// nothing else: no groups, no binary payloads, no version negotiation.
//
// # Records
//
// ContactRecord is the canonical in-memory unit. It is a fixed struct
// rather than an open-ended map; custom phone labels are carried as an
// explicit ordered list of Phone entries, so a record built from a
// "phone_office" column simply holds a Phone with label "OFFICE".
//
// # Encoding
//
// Encode produces one BEGIN:VCARD..END:VCARD block with a fixed line
// order. Every value passes through Escape on the way in. FN is always
// present: when the record carries no usable name the fixed placeholder
// "no name" is emitted. EncodeAll joins blocks with a single newline and
// appends a trailing newline iff at least one record was encoded.
//
// # Decoding
//
// DecodeAll is a best-effort scanner. The document is split on the
// literal BEGIN:VCARD delimiter; fragments lacking END:VCARD are
// discarded as truncated. Within a block, physical lines are unfolded
// (a leading space or tab marks a continuation), each logical line is
// parsed into a property name, parameters and value, and recognized
// properties accumulate into a fresh record. Structurally malformed
// lines and unknown properties are skipped silently; decoding never
// fails mid-document.
//
// # Escaping
//
// Escape and Unescape translate the four characters vCard 3.0 requires
// for this property set (backslash, semicolon, comma, newline).
// Unescape is a single-pass scanner and is the exact left inverse of
// Escape. Decoded values never carry residual escape sequences; this
// includes phone numbers, which are unescaped like every other value.
//
// The codec is pure and holds no shared state, so it is safe to call
// from concurrent goroutines on independent inputs.
package vcard
