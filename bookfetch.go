// Package bookfetch provides a CLI tool that downloads an online book page
// by page, extracts the body text into a single text file, and converts it
// to an e-reader format with an external converter.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, calibre/).
package bookfetch
