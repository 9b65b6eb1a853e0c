package local

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/source"
)

func convertError(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return failure.NewNotFoundFailure(path, err)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return failure.NewFileSystemFailure(path, err)
	}
	return failure.NewOtherFailure(path, err)
}

type objectStore struct{}

// NewObjectStore creates an ObjectStore that provides access to files
// stored on a local file system. Keys of objects are file system
// paths, using '/' as a separator. Buckets are ignored.
func NewObjectStore() source.ObjectStore {
	return objectStore{}
}

type fileReadCloser struct {
	io.Reader
	io.Closer
}

func (objectStore) GetRange(ctx context.Context, location source.Location, r source.RequestRange) (io.ReadCloser, error) {
	path := location.Key
	f, err := os.Open(filepath.FromSlash(path))
	if err != nil {
		return nil, convertError(err, path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, convertError(err, path)
	}
	if info.IsDir() {
		f.Close()
		return nil, failure.NewFileSystemFailure(path, &fs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")})
	}
	if r.First > 0 {
		if _, err := f.Seek(r.First, io.SeekStart); err != nil {
			f.Close()
			return nil, convertError(err, path)
		}
	}
	if r.Length == source.ToEnd {
		return f, nil
	}
	return fileReadCloser{Reader: io.LimitReader(f, r.Length), Closer: f}, nil
}

func (objectStore) GetAttributes(ctx context.Context, location source.Location) (source.Attributes, error) {
	info, err := os.Stat(filepath.FromSlash(location.Key))
	if err != nil {
		return source.Attributes{}, convertError(err, location.Key)
	}
	return source.Attributes{
		Length:       info.Size(),
		LastModified: info.ModTime(),
	}, nil
}

func (objectStore) Put(ctx context.Context, location source.Location, body io.ReadSeeker, size int64) error {
	path := filepath.FromSlash(location.Key)
	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0o777); err != nil {
		return convertError(err, location.Key)
	}

	// Write to a temporary file first, so that readers never
	// observe a partially written file.
	f, err := os.CreateTemp(directory, ".gor-upload-*")
	if err != nil {
		return convertError(err, location.Key)
	}
	temporaryPath := f.Name()
	if _, err := io.CopyN(f, body, size); err != nil {
		f.Close()
		os.Remove(temporaryPath)
		return convertError(err, location.Key)
	}
	if err := f.Close(); err != nil {
		os.Remove(temporaryPath)
		return convertError(err, location.Key)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return convertError(err, location.Key)
	}
	return nil
}

func (objectStore) Delete(ctx context.Context, bucket string, keys []string) error {
	for _, key := range keys {
		if err := os.Remove(filepath.FromSlash(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return convertError(err, key)
		}
	}
	return nil
}

// listEntry is a key or common prefix, as returned by List().
type listEntry struct {
	key      string
	isPrefix bool
}

func (objectStore) List(ctx context.Context, bucket, prefix, delimiter, continuationToken string, maxKeys int) (source.ListPage, error) {
	// Split the prefix into the directory that needs to be
	// traversed and the prefix of the names within it.
	directoryPrefix := prefix[:strings.LastIndexByte(prefix, '/')+1]
	directory := directoryPrefix
	if directory == "" {
		directory = "."
	}

	var entries []listEntry
	if delimiter == "/" {
		dirEntries, err := os.ReadDir(filepath.FromSlash(directory))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return source.ListPage{}, convertError(err, prefix)
		}
		for _, dirEntry := range dirEntries {
			key := directoryPrefix + dirEntry.Name()
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			if dirEntry.IsDir() {
				entries = append(entries, listEntry{key: key + "/", isPrefix: true})
			} else {
				entries = append(entries, listEntry{key: key})
			}
		}
	} else if delimiter == "" {
		if err := filepath.WalkDir(filepath.FromSlash(directory), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if d.IsDir() {
				return nil
			}
			relativePath, err := filepath.Rel(filepath.FromSlash(directory), path)
			if err != nil {
				return err
			}
			if key := directoryPrefix + filepath.ToSlash(relativePath); strings.HasPrefix(key, prefix) {
				entries = append(entries, listEntry{key: key})
			}
			return nil
		}); err != nil {
			return source.ListPage{}, convertError(err, prefix)
		}
	} else {
		return source.ListPage{}, failure.Newf(failure.BadRequest, prefix, "Unsupported delimiter %#v", delimiter)
	}

	// Keys are returned in lexicographical order, so that the last
	// key of a page can act as a continuation token.
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	start := sort.Search(len(entries), func(i int) bool { return entries[i].key > continuationToken })
	if continuationToken == "" {
		start = 0
	}

	var page source.ListPage
	end := len(entries)
	if maxKeys > 0 && end-start > maxKeys {
		end = start + maxKeys
		page.NextContinuationToken = entries[end-1].key
	}
	for _, entry := range entries[start:end] {
		if entry.isPrefix {
			page.CommonPrefixes = append(page.CommonPrefixes, entry.key)
		} else {
			page.Keys = append(page.Keys, entry.key)
		}
	}
	return page, nil
}
