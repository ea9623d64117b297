/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package render caches rasterized pages so page changes and the background
// prerender of neighboring pages do not re-rasterize on every repaint. The
// cache is a bounded LRU keyed by page index, display mode, and pixel size.
package render

import (
	"container/list"
	"image"
	"sync"

	"gopresent/internal/document"
)

// Key identifies one cached raster.
type Key struct {
	Page int
	Mode document.Mode
	W, H int
}

// Cache is a bounded LRU of rendered page images. Safe for concurrent use:
// the UI thread reads while the prerender goroutine fills.
type Cache struct {
	mu    sync.Mutex
	slots int
	order *list.List // front = most recently used; values are *entry
	items map[Key]*list.Element
}

type entry struct {
	key Key
	img image.Image
}

// New returns a cache holding at most slots images. Slots below 1 are raised
// to 1.
func New(slots int) *Cache {
	if slots < 1 {
		slots = 1
	}
	return &Cache{
		slots: slots,
		order: list.New(),
		items: make(map[Key]*list.Element, slots),
	}
}

// Get returns the cached image for k, marking it most recently used.
func (c *Cache) Get(k Key) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[k]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).img, true
}

// Put stores the image for k, evicting the least recently used entry when the
// cache is full.
func (c *Cache) Put(k Key, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[k]; ok {
		el.Value.(*entry).img = img
		c.order.MoveToFront(el)
		return
	}
	c.items[k] = c.order.PushFront(&entry{key: k, img: img})
	for c.order.Len() > c.slots {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
	}
}

// Len returns the number of cached rasters.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge drops every entry. Used when the display mode switch invalidates all
// rasters at once.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[Key]*list.Element, c.slots)
}
