package service

import "context"

// StorageProvider abstracts durable binary asset storage (avatar files).
// Implementations move uploaded temp files into a bucket and delete stored objects.
type StorageProvider interface {
	// SaveFile moves the file at tempPath into the store and returns its stored name.
	SaveFile(ctx context.Context, tempPath string) (string, error)

	// DeleteFile removes a previously stored file by name.
	// Deleting a file that no longer exists is not an error.
	DeleteFile(ctx context.Context, name string) error
}
