// Package main provides the entry point for the anchorscan CLI.
//
// anchorscan finds anchor elements in HTML files whose link text matches a
// phrase such as "Browser version", and can rewrite their href.
//
// Usage:
//
//	anchorscan scan <file>...
//	anchorscan rewrite --href <url> <file>
//	anchorscan demo
//
// See --help for all available options.
package main

// main is the entry point for anchorscan.
func main() {
	Execute()
}
