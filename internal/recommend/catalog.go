// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"slices"
	"sort"
)

// Catalog indexes the movie table. It assigns every movie a stable row key in
// load order and provides lookups between ids, titles and keys.
//
// Titles are assumed unique. When two rows share a title, or two rows share a
// movieId, the row registered last wins the lookup.
//
// A Catalog is immutable after NewCatalog returns and safe for concurrent use.
type Catalog struct {
	movies     []Movie
	idToTitle  map[int]string
	titleToKey map[string]int
	titles     []string
}

// NewCatalog builds a catalog from movies in load order.
// Genres are derived from GenreText when the caller did not split them.
func NewCatalog(movies []Movie) *Catalog {
	c := &Catalog{
		movies:     make([]Movie, len(movies)),
		idToTitle:  make(map[int]string, len(movies)),
		titleToKey: make(map[string]int, len(movies)),
	}

	for i, m := range movies {
		m.Key = i
		if m.Genres == nil {
			m.Genres = SplitGenres(m.GenreText)
		} else {
			m.Genres = slices.Clone(m.Genres)
		}
		c.movies[i] = m
		c.idToTitle[m.ID] = m.Title
		c.titleToKey[m.Title] = i
	}

	c.titles = make([]string, 0, len(c.titleToKey))
	for title := range c.titleToKey {
		c.titles = append(c.titles, title)
	}
	sort.Strings(c.titles)

	return c
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movie returns the row with the given key.
func (c *Catalog) Movie(key int) (Movie, bool) {
	if key < 0 || key >= len(c.movies) {
		return Movie{}, false
	}
	return c.movies[key], true
}

// Key returns the row key for a title.
func (c *Catalog) Key(title string) (int, bool) {
	key, ok := c.titleToKey[title]
	return key, ok
}

// Title returns the title for a movieId.
func (c *Catalog) Title(id int) (string, bool) {
	title, ok := c.idToTitle[id]
	return title, ok
}

// Titles returns the distinct titles in ascending order.
func (c *Catalog) Titles() []string {
	return slices.Clone(c.titles)
}

// Movies returns a copy of all rows in key order.
func (c *Catalog) Movies() []Movie {
	return slices.Clone(c.movies)
}
