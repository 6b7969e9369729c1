package config

// How source files are searched for class names.
// ENUM(text, markup)
type ScanMode int
