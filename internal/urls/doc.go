// Package urls provides centralized constants for the links shown to users.
//
// Usage:
//
//	import "github.com/muurk/civi/internal/urls"
//
//	fmt.Printf("Style gallery: %s\n", urls.MarkdownStyleGallery)
package urls
