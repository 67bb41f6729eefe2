package arbor

// Version is the engine version, overridable at link time.
var Version = "0.3.0"
