// Package marrow implements the value-codec layer of a MariaDB/MySQL wire
// protocol client: bidirectional translation of SQL column values between the
// human-readable text protocol, the length-prefixed binary protocol, and
// strongly typed Go host values, plus direct decoding into Apache Arrow
// columns.
//
// Each codec is a stateless, immutable value implementing the Codec contract;
// a row-decode pipeline picks codecs per column through Registry.Find and
// hands each decode call a cursor positioned at the field together with the
// field's declared byte length. Transport, authentication, statement
// preparation and result-set iteration live outside this package and consume
// it through those narrow interfaces.
package marrow
