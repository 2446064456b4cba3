package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/karlseguin/ccache/v3"

	"github.com/iliyamo/land-marketplace/internal/log"
	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/repository"
)

// ListingSource is the read side of the listings store.
type ListingSource interface {
	All(ctx context.Context) []model.Listing
	Revision() uint64
}

// BrowseService answers browse queries from an in-process cache of
// filtered results.  Entries are keyed by store revision and criteria, so
// any mutation makes earlier entries unreachable; the TTL only bounds how
// long they linger.
type BrowseService struct {
	src   ListingSource
	cache *ccache.Cache[[]model.Listing]
	ttl   time.Duration
}

// NewBrowseService returns a BrowseService over src.  A non-positive ttl
// disables caching.
func NewBrowseService(src ListingSource, ttl time.Duration) *BrowseService {
	return &BrowseService{
		src:   src,
		cache: ccache.New(ccache.Configure[[]model.Listing]().MaxSize(1000)),
		ttl:   ttl,
	}
}

// Search returns the listings matching q, most recent first.  The result
// is the caller's to modify.
func (b *BrowseService) Search(ctx context.Context, q repository.ListingSearchQuery) []model.Listing {
	if b.ttl <= 0 {
		return repository.FilterListings(b.src.All(ctx), q)
	}
	// read the revision first: a concurrent mutation can then only make
	// the cached entry newer than its key, never older
	key := browseKey(b.src.Revision(), q)
	if item := b.cache.Get(key); item != nil && !item.Expired() {
		return cloneAll(item.Value())
	}
	res := repository.FilterListings(b.src.All(ctx), q)
	log.Log().WithFields(log.Fields{"query": q.Key(), "results": len(res)}).Debug("browse cache miss")
	b.cache.Set(key, res, b.ttl)
	return cloneAll(res)
}

// Stop releases the cache worker.
func (b *BrowseService) Stop() {
	b.cache.Stop()
}

func browseKey(rev uint64, q repository.ListingSearchQuery) string {
	sum := md5.Sum([]byte(strconv.FormatUint(rev, 10) + "|" + q.Key()))
	return hex.EncodeToString(sum[:])
}

func cloneAll(ls []model.Listing) []model.Listing {
	out := make([]model.Listing, len(ls))
	for i, l := range ls {
		out[i] = l.Clone()
	}
	return out
}
