// services/blob_store.go
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore is the contract the logo flow needs from external storage:
// write a blob and get a public URL back, delete a blob by that URL.
type BlobStore interface {
	Put(key string, data []byte) (url string, err error)
	Delete(url string) error
}

// DiskBlobStore keeps blobs on the local filesystem, served under
// urlPrefix (e.g. /uploads) by the router's static handler.
type DiskBlobStore struct {
	root      string
	urlPrefix string
}

func NewDiskBlobStore(root, urlPrefix string) (*DiskBlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &DiskBlobStore{root: root, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (d *DiskBlobStore) Put(key string, data []byte) (string, error) {
	clean := filepath.Clean("/" + key)
	path := filepath.Join(d.root, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return d.urlPrefix + filepath.ToSlash(clean), nil
}

func (d *DiskBlobStore) Delete(url string) error {
	rel, ok := strings.CutPrefix(url, d.urlPrefix+"/")
	if !ok {
		return fmt.Errorf("blob url %q outside store", url)
	}
	path := filepath.Join(d.root, filepath.Clean("/"+rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
