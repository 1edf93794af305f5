package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"hash/fnv"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/groupcache"

	"github.com/jlafferty/inkwell/content"
)

var (
	snapshotCache         *groupcache.Group
	snapshotCacheDuration time.Duration
	pageCache             *groupcache.Group
	pageCacheDuration     time.Duration
)

// initSnapshotCache initializes the cache of resolved library snapshots.
// The content on disk may change while the server runs; the quantized key
// means a fresh snapshot is resolved about once per cacheDuration.
func initSnapshotCache(cacheBytes int64, cacheDuration time.Duration) {
	snapshotCacheDuration = cacheDuration
	snapshotCache = groupcache.NewGroup("librarySnapshot", cacheBytes, groupcache.GetterFunc(
		func(ctx context.Context, key string, dest groupcache.Sink) error {
			var buf bytes.Buffer
			enc := gob.NewEncoder(&buf)
			err := enc.Encode(lib.Snapshot())
			if err != nil {
				return fmt.Errorf("librarySnapshot group: %w", err)
			}
			dest.SetBytes(buf.Bytes())
			return nil
		}))
}

// cachedSnapshot returns the current resolved view of the library.
func cachedSnapshot() (*content.Snapshot, error) {
	var (
		data []byte
		q    = make(url.Values, 1)
		s    content.Snapshot
	)
	t := quantize(time.Now(), snapshotCacheDuration, "snapshot")
	q.Set("t", strconv.FormatInt(t, 10))
	err := snapshotCache.Get(context.Background(), q.Encode(), groupcache.AllocatingByteSliceSink(&data))
	if err != nil {
		return nil, fmt.Errorf("cachedSnapshot: %w", err)
	}
	dec := gob.NewDecoder(bytes.NewReader(data))
	err = dec.Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("cachedSnapshot: %w", err)
	}
	return &s, nil
}

// initPageCache initializes the cache of fully rendered pages.
func initPageCache(cacheBytes int64, cacheDuration time.Duration) {
	pageCacheDuration = cacheDuration
	pageCache = groupcache.NewGroup("renderPage", cacheBytes, groupcache.GetterFunc(
		func(ctx context.Context, key string, dest groupcache.Sink) error {
			q, err := url.ParseQuery(key)
			if err != nil {
				return fmt.Errorf("renderPage group: %w", err)
			}
			snap, err := cachedSnapshot()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			err = renderer.RenderPath(&buf, q.Get("path"), snap)
			if err != nil {
				// fs.ErrNotExist flows through so the handler can 404
				return err
			}
			dest.SetBytes(buf.Bytes())
			return nil
		}))
}

// cachedPage returns the rendered page for a URL path.
func cachedPage(urlPath string) ([]byte, error) {
	var (
		data []byte
		q    = make(url.Values, 2)
	)
	q.Set("path", urlPath)
	t := quantize(time.Now(), pageCacheDuration, urlPath)
	q.Set("t", strconv.FormatInt(t, 10))
	err := pageCache.Get(context.Background(), q.Encode(), groupcache.AllocatingByteSliceSink(&data))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// quantize buckets t into cacheDuration-sized intervals, salted by key so
// that cache entries do not all expire in the same instant. groupcache has
// no expiration of its own; a changing key serves the same purpose.
func quantize(t time.Time, d time.Duration, salt string) int64 {
	if d <= 0 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(salt))
	return (t.UnixNano() + int64(h.Sum32())%int64(d)) / int64(d)
}
