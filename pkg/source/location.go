package source

import (
	"net/url"
	"strings"

	"github.com/gorpipe/gor-source/pkg/failure"
)

// Location of an object within an object store.
//
// For cloud storage, Bucket and Key correspond to the bucket and key
// of the object. For HTTP, Bucket holds the scheme and authority of
// the URL, and Key the remainder. Local files only have a Key.
type Location struct {
	Bucket string
	Key    string
}

func (l Location) String() string {
	if l.Bucket == "" {
		return l.Key
	}
	return l.Bucket + "/" + l.Key
}

// DirectoryPrefix returns the key prefix shared by all objects
// contained in the location, when interpreted as a directory.
func (l Location) DirectoryPrefix() string {
	if l.Key == "" || strings.HasSuffix(l.Key, "/") {
		return l.Key
	}
	return l.Key + "/"
}

// ParseLocation splits a URL into the name of the object store that
// holds it and the location of the object within that store. Paths
// without a scheme refer to local files.
func ParseLocation(rawURL string) (string, Location, error) {
	scheme, rest, ok := strings.Cut(rawURL, "://")
	if !ok {
		if strings.HasPrefix(rawURL, "file:") {
			return "file", Location{Key: strings.TrimPrefix(rawURL, "file:")}, nil
		}
		return "file", Location{Key: rawURL}, nil
	}

	switch scheme {
	case "s3", "gs":
		// Keys are not URL encoded, so they may contain
		// characters such as '?' and '#'.
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return "", Location{}, failure.New(failure.BadRequest, rawURL, "URL does not contain a bucket name")
		}
		return scheme, Location{Bucket: bucket, Key: key}, nil
	case "http", "https":
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", Location{}, failure.Wrap(err, failure.BadRequest, rawURL, "Invalid URL")
		}
		if u.Host == "" {
			return "", Location{}, failure.New(failure.BadRequest, rawURL, "URL does not contain a host name")
		}
		authority := scheme + "://" + u.Host
		return scheme, Location{
			Bucket: authority,
			Key:    strings.TrimPrefix(strings.TrimPrefix(rawURL, authority), "/"),
		}, nil
	case "file":
		return "file", Location{Key: rest}, nil
	default:
		return "", Location{}, failure.Newf(failure.BadRequest, rawURL, "Unsupported URL scheme %#v", scheme)
	}
}
