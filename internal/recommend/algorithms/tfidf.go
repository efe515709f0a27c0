// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package algorithms

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// Tokenize splits a genre field into lower-cased tokens. Only the genre
// separator delimits tokens: spaces, hyphens and parentheses stay inside
// ("sci-fi", "(no genres listed)").
func Tokenize(text string) []string {
	genres := recommend.SplitGenres(text)
	for i, g := range genres {
		genres[i] = strings.ToLower(g)
	}
	return genres
}

// tfidfVectorizer weights tokens by term frequency times smoothed inverse
// document frequency:
//
//	tf(t, d)  = count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), then L2-normalized per document
type tfidfVectorizer struct {
	// vocabulary maps a token to its column; columns follow sorted token order
	vocabulary map[string]int
	idf        []float64
}

// fitTransform learns the vocabulary and idf weights from docs and returns one
// normalized sparse vector per document.
func fitTransform(docs [][]string) (*tfidfVectorizer, []sparseVector) {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for tok := range df {
		terms = append(terms, tok)
	}
	sort.Strings(terms)

	v := &tfidfVectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for col, tok := range terms {
		v.vocabulary[tok] = col
		v.idf[col] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	vectors := make([]sparseVector, len(docs))
	for i, tokens := range docs {
		vectors[i] = v.transform(tokens)
	}
	return v, vectors
}

// transform weights one document against the fitted vocabulary. Unknown
// tokens are ignored.
func (v *tfidfVectorizer) transform(tokens []string) sparseVector {
	counts := make(map[int]float64, len(tokens))
	for _, tok := range tokens {
		if col, ok := v.vocabulary[tok]; ok {
			counts[col]++
		}
	}

	vec := make(sparseVector, 0, len(counts))
	for col, tf := range counts {
		vec = append(vec, sparseEntry{index: col, value: tf * v.idf[col]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].index < vec[j].index })

	l2Normalize(vec)
	return vec
}

// size returns the vocabulary size.
func (v *tfidfVectorizer) size() int {
	return len(v.vocabulary)
}
