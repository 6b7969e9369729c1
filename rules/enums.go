package rules

// Kind of rule: patterns require parameters, helpers are standalone classes
// which may optionally take parameters.
// ENUM(pattern, helper)
type Type int
