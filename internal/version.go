package internal

// Version is the lexsplit release version.
const Version = "0.3.0"
