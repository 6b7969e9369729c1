package atomizer

// Kind of problem found while resolving class parameters.
// ENUM(unresolved-value, malformed-hex)
type Warn int
