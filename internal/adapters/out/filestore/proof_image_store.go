// Package filestore provides a local-disk implementation of the proof image
// store. Images are written under a single directory with generated names
// and referenced by URL path, so the HTTP layer can serve them statically.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"orderdelivery/internal/core/ports"
	"orderdelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// BaseURLPath is the URL prefix under which stored images are served.
const BaseURLPath = "/uploads/delivery-proofs/"

// DiskProofImageStore implements ports.ProofImageStore on the local
// filesystem.
type DiskProofImageStore struct {
	dir string
}

// NewDiskProofImageStore creates a store rooted at dir, creating the
// directory if needed.
func NewDiskProofImageStore(dir string) (*DiskProofImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DiskProofImageStore{dir: dir}, nil
}

// Save writes the payload to disk under a generated name and returns the URL
// reference to record on the proof row. The original filename contributes
// only its extension; its name part is discarded.
func (s *DiskProofImageStore) Save(_ context.Context, upload ports.ImageUpload) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(upload.Filename))

	file, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(file, upload.Content); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", err
	}

	if err = file.Close(); err != nil {
		os.Remove(file.Name())
		return "", err
	}

	return BaseURLPath + name, nil
}

// Remove deletes the image with the given reference. References that resolve
// outside the store directory are rejected.
func (s *DiskProofImageStore) Remove(_ context.Context, ref string) error {
	name, err := refToName(ref)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return errs.NewObjectNotFoundErrorWithCause("imageRef", ref, err)
		}
		return err
	}
	return nil
}

// List enumerates all stored images with their modification times.
func (s *DiskProofImageStore) List(_ context.Context) ([]ports.StoredImage, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	images := make([]ports.StoredImage, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		images = append(images, ports.StoredImage{
			Ref:     BaseURLPath + entry.Name(),
			ModTime: info.ModTime(),
		})
	}

	return images, nil
}

// refToName extracts the file name from a stored reference, rejecting
// anything that would escape the store directory.
func refToName(ref string) (string, error) {
	name := path.Base(ref)
	if name == "." || name == ".." || name == "/" || strings.ContainsAny(name, `/\`) {
		return "", errs.NewValueIsInvalidErrorWithCause("imageRef",
			fmt.Errorf("%q does not name a stored image", ref))
	}
	return name, nil
}
