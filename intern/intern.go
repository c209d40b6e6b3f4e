// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package intern canonicalizes repeated strings such as XML local names and
// namespace URIs so that equal content shares a single backing instance.
//
// A Cache never evicts. It is meant for a bounded vocabulary, like the names
// found in the documents of one schema, not for arbitrary text content.
package intern

import (
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rcrowley/go-metrics"
)

// Metric names used by Cache.Register.
const (
	MetricHits   = "intern.hits"
	MetricMisses = "intern.misses"
	MetricSize   = "intern.size"
)

// Cache maps string content to its canonical instance. It is safe for
// concurrent use and callers never need to lock around it.
type Cache struct {
	m      *xsync.MapOf[string, string]
	hits   metrics.Counter
	misses metrics.Counter
}

// Stats is a point in time view of a Cache's counters.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

var shared = New()

// Shared returns the process-wide Cache used by decoders and marshallers that
// were not given one explicitly.
func Shared() *Cache {
	return shared
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{
		m:      xsync.NewMapOf[string, string](),
		hits:   metrics.NewCounter(),
		misses: metrics.NewCounter(),
	}
}

// Intern returns the canonical instance for s. The first s seen for a given
// content becomes the canonical one, no copy is made.
func (c *Cache) Intern(s string) string {
	if v, ok := c.m.Load(s); ok {
		c.hits.Inc(1)
		return v
	}
	v, loaded := c.m.LoadOrStore(s, s)
	if loaded {
		// Lost the race against another writer for the same content.
		c.hits.Inc(1)
	} else {
		c.misses.Inc(1)
	}
	return v
}

// InternBytes is like Intern but takes the content as bytes.
func (c *Cache) InternBytes(b []byte) string {
	return c.Intern(string(b))
}

// Len returns the number of canonical entries.
func (c *Cache) Len() int {
	return c.m.Size()
}

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Count(),
		Misses: c.misses.Count(),
		Size:   c.Len(),
	}
}

// Register publishes the cache counters in r.
func (c *Cache) Register(r metrics.Registry) error {
	if err := r.Register(MetricHits, c.hits); err != nil {
		return err
	}
	if err := r.Register(MetricMisses, c.misses); err != nil {
		return err
	}
	return r.Register(MetricSize, metrics.NewFunctionalGauge(func() int64 {
		return int64(c.Len())
	}))
}
