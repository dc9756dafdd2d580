//go:build dev

package config

// APIBaseURL points development builds at a backend running locally.
const APIBaseURL = "http://localhost:1212"

// Development reports whether this is a development build.
const Development = true
