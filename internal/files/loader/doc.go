// Package loader reads image files and encodes them for display.
//
// Loading is decided by what a file contains, not what it is called: the
// leading bytes are matched against known format signatures and only JPEG,
// PNG, GIF and WebP content is accepted. A PNG saved as photo.txt loads; a
// text file renamed to notes.png does not.
//
// Every failure is returned to the caller as a *picview.ImageError. Unlike
// directory listing, nothing is degraded silently.
package loader
