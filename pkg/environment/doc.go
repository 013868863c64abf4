// Package environment names the deployment environments the application
// distinguishes and normalizes their spellings.
package environment
