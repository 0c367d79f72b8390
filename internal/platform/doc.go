// Package platform smooths over operating system differences: permission
// bits for generated scripts and opening files in the user's viewer.
package platform
