package kml

// ReadOptions configures the Reader.
type ReadOptions struct {
	// Strict enables strict XML syntax checking. When false, HTML entities
	// such as &nbsp; and unquoted attribute values are accepted.
	// Default: true
	Strict bool

	// DecodeCharset decodes documents that declare a non-UTF-8 encoding
	// (ISO-8859-1, windows-1252, ...). When false such documents fail.
	// Default: true
	DecodeCharset bool

	// ValidateGeometry runs Validate over the parsed tree and fails the read
	// on coordinates outside geographic bounds or unclosed rings.
	// Default: false
	ValidateGeometry bool
}

// DefaultReadOptions returns default options.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		Strict:           true,
		DecodeCharset:    true,
		ValidateGeometry: false,
	}
}

// WriteOptions configures the Writer.
type WriteOptions struct {
	// Indent writes one element per line, indented by nesting depth.
	Indent bool

	// Declaration writes an <?xml version="1.0" encoding="UTF-8"?> header.
	Declaration bool
}

// DefaultWriteOptions returns default options: compact output with no
// declaration.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{}
}
