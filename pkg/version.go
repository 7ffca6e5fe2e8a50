package calverhook

// Version is the calverhook release version. It is calendar versioned
// and maintained by the hook itself.
var Version = "2026.8.26"
