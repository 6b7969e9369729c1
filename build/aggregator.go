// Package build collects class names from many sources and produces single
// stylesheet for all of them.
package build

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"

	"acss/atomizer"
)

// ErrStreamsNotSupported is returned for blobs which carry stream instead of
// content.
var ErrStreamsNotSupported = errors.New("streams are not supported")

// Blob is a single source. Exactly one of Data and Stream is expected to be
// set, blob with neither is null and ignored.
type Blob struct {
	// Path is full name of the source.
	Path string
	// Base is directory output produced from this blob is placed into.
	Base    string
	ModTime time.Time
	Data    []byte
	Stream  io.Reader
}

// IsNull reports blob without any content, such blobs are skipped.
func (b *Blob) IsNull() bool {
	return b.Data == nil && b.Stream == nil
}

// IsStream reports blob which has to be read from Stream rather than Data.
func (b *Blob) IsStream() bool {
	return b.Stream != nil
}

// Output is the stylesheet produced by Finish. Path, Base and ModTime are
// taken from the most recently modified source.
type Output struct {
	Path    string
	Base    string
	ModTime time.Time
	CSS     string
	Result  atomizer.Result
	// ClassNames is sorted list of unique class names found in all sources.
	ClassNames []string
}

// Aggregator accumulates class names found in blobs. Nothing is produced
// until Finish is called.
type Aggregator struct {
	log      *zap.Logger
	atomizer *atomizer.Atomizer
	config   atomizer.Config
	options  atomizer.CSSOptions
	markup   []string

	counts  map[string]int
	latest  *Blob
	sources int
}

// AggregatorOption configures Aggregator.
type AggregatorOption func(*Aggregator)

// WithMarkup limits search to values of listed attributes (lower case).
func WithMarkup(attributes ...string) AggregatorOption {
	return func(a *Aggregator) {
		a.markup = attributes
	}
}

// NewAggregator creates aggregator, config and options are used when
// stylesheet is generated.
func NewAggregator(a *atomizer.Atomizer, config atomizer.Config, options atomizer.CSSOptions, log *zap.Logger, opts ...AggregatorOption) *Aggregator {
	agg := &Aggregator{
		log:      log,
		atomizer: a,
		config:   config,
		options:  options,
		counts:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(agg)
	}
	return agg
}

// Add scans blob for class names.
func (a *Aggregator) Add(b *Blob) error {
	switch {
	case b.IsStream():
		return fmt.Errorf("%s: %w", b.Path, ErrStreamsNotSupported)
	case b.IsNull():
		a.log.Debug("Skipping empty source", zap.String("path", b.Path))
		return nil
	}

	text := b.Data
	if len(a.markup) > 0 {
		var err error
		if text, err = extractAttributes(b.Data, a.markup); err != nil {
			a.log.Warn("Markup is malformed, using attributes found so far", zap.String("path", b.Path), zap.Error(err))
		}
	}

	found := a.atomizer.CountClassNames(string(text))
	for name, n := range found {
		a.counts[name] += n
	}
	a.sources++

	// sources without modification time always replace previous one
	if a.latest == nil || a.latest.ModTime.IsZero() || b.ModTime.After(a.latest.ModTime) {
		a.latest = &Blob{Path: b.Path, Base: b.Base, ModTime: b.ModTime}
	}
	a.log.Debug("Source scanned", zap.String("path", b.Path), zap.Int("classes", len(found)))
	return nil
}

// Sources returns number of blobs scanned so far.
func (a *Aggregator) Sources() int {
	return a.sources
}

// Counts returns number of occurrences of every class name found so far.
func (a *Aggregator) Counts() map[string]int {
	return maps.Clone(a.counts)
}

// ClassNames returns sorted unique class names found so far.
func (a *Aggregator) ClassNames() []string {
	return slices.Sorted(maps.Keys(a.counts))
}

// Finish generates stylesheet named name for everything collected. When
// nothing was added nil output is returned.
func (a *Aggregator) Finish(name string) (*Output, error) {
	if a.latest == nil {
		return nil, nil
	}

	names := a.ClassNames()
	res, err := a.atomizer.GetCSS(a.atomizer.GetConfig(names, a.config), a.options)
	if err != nil {
		return nil, err
	}
	return &Output{
		Path:       filepath.Join(a.latest.Base, name),
		Base:       a.latest.Base,
		ModTime:    a.latest.ModTime,
		CSS:        res.CSS,
		Result:     res,
		ClassNames: names,
	}, nil
}
