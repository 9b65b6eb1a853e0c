package source

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/gorpipe/gor-source/pkg/clock"
	"github.com/gorpipe/gor-source/pkg/eviction"
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/prometheus/client_golang/prometheus"

	"golang.org/x/sync/singleflight"
)

var (
	metadataCachePrometheusMetrics sync.Once

	metadataCacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gor",
			Subsystem: "source",
			Name:      "metadata_cache_lookups_total",
			Help:      "Number of lookups against the object metadata cache, by result.",
		},
		[]string{"result"})
	metadataCacheLookupsHit     = metadataCacheLookupsTotal.WithLabelValues("Hit")
	metadataCacheLookupsMiss    = metadataCacheLookupsTotal.WithLabelValues("Miss")
	metadataCacheLookupsExpired = metadataCacheLookupsTotal.WithLabelValues("Expired")

	metadataCacheEvictionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gor",
			Subsystem: "source",
			Name:      "metadata_cache_evictions_total",
			Help:      "Number of entries removed from the object metadata cache to make space.",
		})
)

// AttributesFetcher obtains the attributes of an object from its
// store. It is called by MetadataCache on a miss.
type AttributesFetcher func(ctx context.Context) (Attributes, error)

type metadataCacheEntry struct {
	attributes Attributes
	expiration time.Time
}

type metadataCacheShard struct {
	lock        sync.Mutex
	entries     map[string]metadataCacheEntry
	evictionSet eviction.Set[string]
	// Incremented by every invalidation, so that fetches that
	// started before it don't store their results.
	generation uint64
}

// MetadataCache holds the attributes of recently accessed objects,
// keyed by the string representation of their Location. Entries expire
// a fixed amount of time after they were written. Failed fetches are
// not cached.
//
// The cache is split into shards, each protected by its own lock.
// Concurrent misses for the same key result in a single fetch.
type MetadataCache struct {
	clock           clock.Clock
	expiration      time.Duration
	maximumPerShard int
	shards          []*metadataCacheShard
	inflight        singleflight.Group
}

// NewMetadataCache creates a MetadataCache. Each shard holds at most
// ceil(maximumEntries / shards) entries, and evicts entries in the
// order dictated by the eviction set returned by newSet.
func NewMetadataCache(clock clock.Clock, shards, maximumEntries int, expiration time.Duration, newSet func() eviction.Set[string]) *MetadataCache {
	metadataCachePrometheusMetrics.Do(func() {
		prometheus.MustRegister(metadataCacheLookupsTotal)
		prometheus.MustRegister(metadataCacheEvictionsTotal)
	})

	if shards < 1 {
		shards = 1
	}
	c := &MetadataCache{
		clock:           clock,
		expiration:      expiration,
		maximumPerShard: (maximumEntries + shards - 1) / shards,
		shards:          make([]*metadataCacheShard, 0, shards),
	}
	for i := 0; i < shards; i++ {
		c.shards = append(c.shards, &metadataCacheShard{
			entries:     map[string]metadataCacheEntry{},
			evictionSet: newSet(),
		})
	}
	return c
}

func (c *MetadataCache) getShard(key string) *metadataCacheShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return c.shards[h.Sum32()%uint32(len(c.shards))]
}

// lookup returns a cached entry if it has not expired.
func (c *MetadataCache) lookup(shard *metadataCacheShard, key string) (Attributes, bool) {
	shard.lock.Lock()
	defer shard.lock.Unlock()

	if entry, ok := shard.entries[key]; ok {
		if c.clock.Now().Before(entry.expiration) {
			shard.evictionSet.Touch(key)
			metadataCacheLookupsHit.Inc()
			return entry.attributes, true
		}
		delete(shard.entries, key)
		shard.evictionSet.Delete(key)
		metadataCacheLookupsExpired.Inc()
	} else {
		metadataCacheLookupsMiss.Inc()
	}
	return Attributes{}, false
}

func (c *MetadataCache) insert(shard *metadataCacheShard, key string, attributes Attributes, generation uint64) {
	shard.lock.Lock()
	defer shard.lock.Unlock()

	if shard.generation != generation {
		return
	}
	if _, ok := shard.entries[key]; ok {
		shard.evictionSet.Touch(key)
	} else {
		for shard.evictionSet.Len() >= c.maximumPerShard && shard.evictionSet.Len() > 0 {
			delete(shard.entries, shard.evictionSet.Peek())
			shard.evictionSet.Remove()
			metadataCacheEvictionsTotal.Inc()
		}
		shard.evictionSet.Insert(key)
	}
	shard.entries[key] = metadataCacheEntry{
		attributes: attributes,
		expiration: c.clock.Now().Add(c.expiration),
	}
}

// Get returns the attributes of an object, calling fetch if they are
// not present in the cache. Errors returned by fetch are wrapped in a
// failure.ExecutionError.
func (c *MetadataCache) Get(ctx context.Context, key string, fetch AttributesFetcher) (Attributes, error) {
	shard := c.getShard(key)
	if attributes, ok := c.lookup(shard, key); ok {
		return attributes, nil
	}

	result, err, _ := c.inflight.Do(key, func() (interface{}, error) {
		shard.lock.Lock()
		generation := shard.generation
		shard.lock.Unlock()

		attributes, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.insert(shard, key, attributes, generation)
		return attributes, nil
	})
	if err != nil {
		return Attributes{}, &failure.ExecutionError{Err: err}
	}
	return result.(Attributes), nil
}

// Invalidate removes the entry for a key, if present. Fetches for the
// key that are in progress will not store their results, and callers
// arriving afterwards will not wait for them.
func (c *MetadataCache) Invalidate(key string) {
	shard := c.getShard(key)
	shard.lock.Lock()
	if _, ok := shard.entries[key]; ok {
		delete(shard.entries, key)
		shard.evictionSet.Delete(key)
	}
	shard.generation++
	shard.lock.Unlock()

	c.inflight.Forget(key)
}
