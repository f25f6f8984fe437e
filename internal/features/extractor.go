// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package features turns Records into per-group numeric feature vectors.
// Implements: document cache, TF-IDF text features, network, temporal,
//
//	and categorical signals; docs/ARCHITECTURE § Feature Engineering.
//
// An Extractor is not safe for concurrent use. Fit replaces the vocabulary,
// so callers sharing one Extractor must serialize Fit and ExtractFeatures.
package features

import (
	"strings"
	"time"

	"github.com/pdiddy/research-clusters/internal/textproc"
	"github.com/pdiddy/research-clusters/internal/tfidf"
	"github.com/pdiddy/research-clusters/pkg/types"
)

// Widths of the fixed-size feature groups.
const (
	NetworkDims     = 4
	TemporalDims    = 2
	CategoricalDims = 3
)

// FeatureVector holds the raw, unscaled features of one record.
type FeatureVector struct {
	RecordID string

	// Text is the TF-IDF vector over the fitted vocabulary.
	Text []float64

	// Network is degree, betweenness, closeness, clustering coefficient.
	Network []float64

	// Temporal is publication year and citation age in years.
	Temporal []float64

	// Categorical is author count, term count, citation count.
	Categorical []float64
}

// Group returns the values of group g.
func (f FeatureVector) Group(g types.FeatureGroup) []float64 {
	switch g {
	case types.GroupText:
		return f.Text
	case types.GroupNetwork:
		return f.Network
	case types.GroupTemporal:
		return f.Temporal
	case types.GroupCategorical:
		return f.Categorical
	}
	return nil
}

// Extractor builds Documents, fits the vocabulary, and extracts features.
type Extractor struct {
	cfg       types.TextConfig
	tokenizer textproc.Tokenizer
	now       func() time.Time

	docs  map[string]*Document
	vocab *tfidf.Vocabulary

	// meanYear is the mean publication year of the dated records of the
	// last Fit; undated records take it. Zero when none were dated.
	meanYear float64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the clock used to compute citation age.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// NewExtractor returns an unfitted Extractor.
func NewExtractor(cfg types.TextConfig, opts ...Option) *Extractor {
	e := &Extractor{
		cfg:       cfg,
		tokenizer: textproc.NewTokenizer(cfg),
		now:       time.Now,
		docs:      make(map[string]*Document),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the text configuration the Extractor was built with.
func (e *Extractor) Config() types.TextConfig {
	return e.cfg
}

// Fit builds Documents for records, reusing cached Documents by record ID,
// and fits the vocabulary and mean publication year over them. Cached
// Documents of records outside the new corpus are evicted.
func (e *Extractor) Fit(records []types.Record) {
	docs := make(map[string]*Document, len(records))
	corpus := make([][]string, 0, len(records))
	var yearSum float64
	dated := 0
	for _, r := range records {
		if !r.Date.IsZero() {
			yearSum += float64(r.Date.Year())
			dated++
		}
		doc, ok := docs[r.ID]
		if !ok {
			doc = e.document(r)
			docs[r.ID] = doc
		}
		corpus = append(corpus, doc.Tokens)
	}
	e.docs = docs
	e.vocab = tfidf.Fit(corpus, e.cfg.MaxVocabulary)
	e.meanYear = 0
	if dated > 0 {
		e.meanYear = yearSum / float64(dated)
	}
}

// Vocabulary returns the fitted vocabulary, or nil before Fit.
func (e *Extractor) Vocabulary() *tfidf.Vocabulary {
	return e.vocab
}

// Document returns the cached Document for r, building and caching it on
// a miss.
func (e *Extractor) Document(r types.Record) *Document {
	doc := e.document(r)
	e.docs[r.ID] = doc
	return doc
}

func (e *Extractor) document(r types.Record) *Document {
	if doc, ok := e.docs[r.ID]; ok {
		return doc
	}
	return buildDocument(r, e.tokenizer)
}

// ExtractFeatures returns the feature groups of r. A nil signals argument
// yields zero network features.
func (e *Extractor) ExtractFeatures(r types.Record, signals *types.NetworkSignals) FeatureVector {
	doc := e.Document(r)

	fv := FeatureVector{
		RecordID:    r.ID,
		Text:        e.vocab.Transform(doc.Tokens),
		Network:     make([]float64, NetworkDims),
		Temporal:    make([]float64, TemporalDims),
		Categorical: make([]float64, CategoricalDims),
	}

	if signals != nil {
		fv.Network[0] = signals.Degree
		fv.Network[1] = signals.Betweenness
		fv.Network[2] = signals.Closeness
		fv.Network[3] = signals.ClusteringCoefficient
	}

	switch {
	case !r.Date.IsZero():
		year := float64(r.Date.Year())
		fv.Temporal[0] = year
		fv.Temporal[1] = float64(e.now().Year()) - year
	case e.meanYear > 0:
		fv.Temporal[0] = e.meanYear
		fv.Temporal[1] = float64(e.now().Year()) - e.meanYear
	}

	fv.Categorical[0] = float64(len(r.Authors))
	fv.Categorical[1] = float64(len(r.Terms))
	fv.Categorical[2] = float64(r.Citations())

	return fv
}

// ExtractThemes concatenates the text of records and returns its topK
// keywords. It is used to name clusters.
func (e *Extractor) ExtractThemes(records []types.Record, topK int) []types.Keyword {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = e.Document(r).Text
	}
	return e.tokenizer.ExtractKeywords(strings.Join(texts, " "), topK)
}
