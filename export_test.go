package treesitter

// NewParentForTest exposes newParent to the external treesitter_test
// package, which otherwise only exercises this package through its
// public API.
var NewParentForTest = newParent
