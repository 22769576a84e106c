// Package convert wires the vcard codec to the tabular adapter: it maps
// header-keyed rows onto contact records and back, routes conversions
// on file extensions, and implements the split, merge and free-text
// entry points the bot and CLI expose. The codec never sees table
// headers and the adapter never sees vCard text; this package is the
// only place the two vocabularies meet.
package convert
