//go:build !dev

package config

// APIBaseURL is empty in production builds: the API shares the dashboard's
// origin.
const APIBaseURL = ""

// Development reports whether this is a development build.
const Development = false
