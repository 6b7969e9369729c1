package build

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"acss/archive"
	"acss/atomizer"
	"acss/config"
	"acss/misc"
	"acss/rules"
	"acss/state"
)

// NewAtomizer creates atomizer with built-in rules and rules from rulesPath
// (or configured rules file when rulesPath is empty).
func NewAtomizer(env *state.LocalEnv, rulesPath string, log *zap.Logger) (*atomizer.Atomizer, error) {
	a, err := atomizer.New(log.Named("atomizer"), atomizer.WithVerbose(env.Cfg.Verbose))
	if err != nil {
		return nil, fmt.Errorf("unable to register built-in rules: %w", err)
	}
	if len(rulesPath) == 0 {
		rulesPath = env.Cfg.RulesPath
	}
	if len(rulesPath) == 0 {
		return a, nil
	}
	list, err := rules.Load(rulesPath)
	if err != nil {
		return nil, err
	}
	if err := a.AddRules(list...); err != nil {
		return nil, fmt.Errorf("unable to register rules from '%s': %w", rulesPath, err)
	}
	env.Rpt.Store("rules/"+filepath.Base(rulesPath), rulesPath)
	log.Debug("Additional rules registered", zap.String("file", rulesPath), zap.Int("count", len(list)))
	return a, nil
}

// walker feeds every recognized source to aggregator.
type walker struct {
	log   *zap.Logger
	agg   *Aggregator
	exts  []string
	limit int64

	// cpName and decode convert non UTF-8 names in archives
	cpName string
	decode func(string) (string, error)

	files int
	bytes int64
}

func prepare(ctx context.Context, cmd *cli.Command, log *zap.Logger) (*walker, error) {
	env := state.EnvFromContext(ctx)

	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Output.Overwrite

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		var err error
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	a, err := NewAtomizer(env, cmd.String("rules"), log)
	if err != nil {
		return nil, err
	}

	cfg := env.Cfg.Atomizer
	if extra := cmd.StringSlice("class"); len(extra) > 0 {
		cfg = atomizer.MergeConfigs(cfg, atomizer.Config{ClassNames: extra})
	}
	options := env.Cfg.CSS
	// banner is expanded after stylesheet is ready
	options.Banner = ""

	var opts []AggregatorOption
	if env.Cfg.Sources.Mode == config.ScanModeMarkup || cmd.Bool("markup") {
		opts = append(opts, WithMarkup(env.Cfg.Sources.Attributes...))
	}

	limit := env.Cfg.MaxSourceSize()
	if limit == 0 {
		limit = DefaultMaxSourceSize
	}

	w := &walker{
		log:   log,
		agg:   NewAggregator(a, cfg, options, log, opts...),
		exts:  env.Cfg.Sources.Extensions,
		limit: limit,
	}
	if env.CodePage != nil {
		w.cpName, _ = ianaindex.IANA.Name(env.CodePage)
		w.decode = env.CodePage.NewDecoder().String
	}
	return w, nil
}

func (w *walker) walkAll(ctx context.Context, sources []string) error {
	if len(sources) == 0 {
		return errors.New("no input source has been specified")
	}
	for _, src := range sources {
		src, err := filepath.Abs(src)
		if err != nil {
			return err
		}
		if err := w.process(ctx, src); err != nil {
			return err
		}
	}
	return nil
}

// Run builds single stylesheet for all sources.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	dst := cmd.String("out")
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}

	w, err := prepare(ctx, cmd, log)
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.Strings("sources", cmd.Args().Slice()), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)),
			zap.Int("files", w.files), zap.String("size", humanize.IBytes(uint64(w.bytes))))
	}(time.Now())

	if err := w.walkAll(ctx, cmd.Args().Slice()); err != nil {
		return err
	}

	name := config.CleanFileName(env.Cfg.Output.Name)
	out, err := w.agg.Finish(name)
	if err != nil {
		return fmt.Errorf("unable to generate stylesheet: %w", err)
	}
	if out == nil {
		log.Warn("Nothing to process, no stylesheet generated")
		return nil
	}
	if len(dst) > 0 {
		out.Path = filepath.Join(dst, name)
	}

	css := out.CSS
	if env.Cfg.Output.Minify || cmd.Bool("minify") {
		if css, err = Minify(css); err != nil {
			return err
		}
	}
	banner, err := ExpandBanner(env.Cfg.CSS.Banner, BannerValues{
		Name:    name,
		Version: misc.GetVersion(),
		Classes: len(out.ClassNames),
		Rules:   out.Result.Rules,
		Time:    time.Now(),
	})
	if err != nil {
		return err
	}
	css = banner + css

	if err := writeOutput(out.Path, []byte(css), out.ModTime, env.Overwrite, log); err != nil {
		return err
	}

	env.Rpt.Store("result/"+name, out.Path)
	env.Rpt.StoreData("result/classes.txt", []byte(strings.Join(out.ClassNames, "\n")))
	if len(out.Result.Warnings) > 0 {
		var buf bytes.Buffer
		for _, warn := range out.Result.Warnings {
			fmt.Fprintln(&buf, warn.String())
		}
		env.Rpt.StoreData("result/warnings.txt", buf.Bytes())
	}

	log.Info("Stylesheet written", zap.String("file", out.Path), zap.Int("classes", len(out.ClassNames)),
		zap.Int("rules", out.Result.Rules), zap.Int("warnings", len(out.Result.Warnings)),
		zap.String("size", humanize.IBytes(uint64(len(css)))))
	return nil
}

// writeOutput refuses to replace existing file unless overwrite is set. When
// modTime is known it is copied to the result.
func writeOutput(path string, data []byte, modTime time.Time, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", path)
		}
		log.Warn("Overwriting existing file", zap.String("file", path))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	if !modTime.IsZero() {
		if err := os.Chtimes(path, time.Now(), modTime); err != nil {
			log.Warn("Unable to set modification time", zap.String("file", path), zap.Error(err))
		}
	}
	return nil
}

// process determines the input type (directory, archive with optional path
// inside, or single file) and processes it accordingly.
func (w *walker) process(ctx context.Context, src string) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := w.processDir(ctx, head); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			return nil
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if arc {
			// we need to look inside to see if path makes sense
			pathIn := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := w.processArchive(ctx, head, pathIn, true); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		// explicitly named file is scanned whatever extension it has
		return w.processFile(head, filepath.Dir(head), fi)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir walks directory tree in natural order looking for sources and
// archives. Symbolic links are not followed.
func (w *walker) processDir(ctx context.Context, dir string) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			w.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(paths))

	count := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		if hasSourceExt(path, w.exts) {
			fi, err := os.Stat(path)
			if err != nil {
				w.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
				continue
			}
			count++
			if err := w.processFile(path, dir, fi); err != nil {
				w.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			}
			continue
		}

		arc, err := isArchiveFile(path)
		if err != nil {
			w.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !arc {
			w.log.Debug("Skipping file, not recognized as source or archive", zap.String("file", path))
			continue
		}
		count++
		if err := w.processArchive(ctx, path, "", false); err != nil {
			w.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
		}
	}
	if count == 0 {
		w.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

func (w *walker) processFile(path, base string, fi fs.FileInfo) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data, enc, err := readSource(f, fi.Size(), w.limit)
	if err != nil {
		return err
	}
	if data == nil {
		w.log.Debug("Skipping file, binary content", zap.String("file", path))
		return nil
	}
	if enc != encUnknown {
		w.log.Debug("Source decoded", zap.String("file", path), zap.Stringer("encoding", enc))
	}
	return w.add(&Blob{Path: path, Base: base, ModTime: fi.ModTime(), Data: data})
}

// processArchive scans sources inside archive under pathIn. When archive was
// named explicitly and pathIn points to a file, that file is scanned whatever
// extension it has.
func (w *walker) processArchive(ctx context.Context, path, pathIn string, explicit bool) error {
	count := 0
	err := archive.Walk(path, pathIn, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := f.FileHeader.Name
		if w.decode != nil && f.FileHeader.NonUTF8 {
			if n, err := w.decode(name); err == nil {
				name = n
			} else {
				w.log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", w.cpName), zap.String("path", name), zap.Error(err))
			}
		}

		if !hasSourceExt(name, w.exts) && !(explicit && f.FileHeader.Name == pathIn) {
			w.log.Debug("Skipping file in archive, not recognized as source", zap.String("archive", arc), zap.String("file", name))
			return nil
		}
		count++

		raw, err := archive.ReadFile(f, w.limit)
		if err != nil {
			w.log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			return nil
		}
		data, _, err := readSource(bytes.NewReader(raw), int64(len(raw)), w.limit)
		if err != nil {
			w.log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			return nil
		}
		if data == nil {
			w.log.Debug("Skipping file in archive, binary content", zap.String("archive", arc), zap.String("file", name))
			return nil
		}
		return w.add(&Blob{
			Path:    filepath.Join(arc, filepath.FromSlash(name)),
			Base:    filepath.Dir(arc),
			ModTime: f.Modified,
			Data:    data,
		})
	})
	if err == nil && count == 0 {
		w.log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

func (w *walker) add(b *Blob) error {
	if err := w.agg.Add(b); err != nil {
		return err
	}
	w.files++
	w.bytes += int64(len(b.Data))
	return nil
}
