// Package files groups the filesystem-facing parts of picview.
//
//   - filesystem: FileSystemProvider with OS and in-memory implementations
//   - lister: one-level directory listing of folders and image files
//   - loader: content-sniffed image loading into base64 payloads
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/picview/internal/files/lister"
//	    "github.com/vvka-141/picview/internal/files/loader"
//	)
//
//	items := lister.NewLister(logger).List(ctx, "/home/me/Pictures")
//	payload, err := loader.NewLoader(logger).Load(ctx, "/home/me/Pictures/cat.png")
package files
