// Package rgear generates startup scripts for R based content servers.
package rgear

// Version is the released version of the rgear CLI.
const Version = "0.2.0"
