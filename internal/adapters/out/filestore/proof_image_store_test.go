package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orderdelivery/internal/adapters/out/filestore"
	"orderdelivery/internal/core/ports"
	"orderdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*filestore.DiskProofImageStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := filestore.NewDiskProofImageStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestDiskProofImageStore_Save(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)

	ref, err := store.Save(ctx, ports.ImageUpload{
		Filename:    "receipt.JPG",
		ContentType: "image/jpeg",
		Size:        9,
		Content:     strings.NewReader("jpeg data"),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, filestore.BaseURLPath))
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	name := strings.TrimPrefix(ref, filestore.BaseURLPath)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "jpeg data", string(data))
}

func TestDiskProofImageStore_Save_GeneratesUniqueNames(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	upload := func() ports.ImageUpload {
		return ports.ImageUpload{
			Filename:    "proof.png",
			ContentType: "image/png",
			Size:        4,
			Content:     strings.NewReader("data"),
		}
	}

	first, err := store.Save(ctx, upload())
	require.NoError(t, err)
	second, err := store.Save(ctx, upload())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskProofImageStore_Remove(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)

	ref, err := store.Save(ctx, ports.ImageUpload{
		Filename: "proof.png",
		Content:  strings.NewReader("data"),
	})
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, ref))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiskProofImageStore_Remove_MissingImage(t *testing.T) {
	store, _ := newStore(t)
	err := store.Remove(context.Background(), filestore.BaseURLPath+"nope.png")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDiskProofImageStore_Remove_RejectsTraversal(t *testing.T) {
	store, _ := newStore(t)

	for _, ref := range []string{"..", "/", filestore.BaseURLPath + ".."} {
		err := store.Remove(context.Background(), ref)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "ref %q", ref)
	}
}

func TestDiskProofImageStore_List(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	ref, err := store.Save(ctx, ports.ImageUpload{
		Filename: "proof.png",
		Content:  strings.NewReader("data"),
	})
	require.NoError(t, err)

	images, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, ref, images[0].Ref)
	assert.False(t, images[0].ModTime.IsZero())
}
