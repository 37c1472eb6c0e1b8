package generate

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/rulesgen/internal/config"
	"git.home.luguber.info/inful/rulesgen/internal/content"
	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
	"git.home.luguber.info/inful/rulesgen/internal/git"
	"git.home.luguber.info/inful/rulesgen/internal/gitignore"
	"git.home.luguber.info/inful/rulesgen/internal/logfields"
	"git.home.luguber.info/inful/rulesgen/internal/metrics"
	"git.home.luguber.info/inful/rulesgen/internal/output"
	"git.home.luguber.info/inful/rulesgen/internal/sources"
)

// Audiences kept per output.
var (
	cursorTreeAudience  = content.NewAudiences(content.AudienceAll, content.AudienceCursor)
	codexBundleAudience = content.NewAudiences(content.AudienceAll, content.AudienceCodex)
	canonicalAudience   = content.NewAudiences(content.AudienceAll)
)

const targetAgent = "agent"

// Generator runs generation passes against a Fetcher.
type Generator struct {
	fetcher  Fetcher
	recorder metrics.Recorder
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// New creates a generator.
func New(fetcher Fetcher, opts ...Option) *Generator {
	g := &Generator{fetcher: fetcher, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// preparedDoc is one resolved document, parsed once and rendered per output.
type preparedDoc struct {
	rel string
	doc content.Document
}

// run carries the state of one pass.
type run struct {
	opts    Options
	workDir string
	spec    config.GenerationSpec
	layout  config.Layout
	kinds   []config.Kind
	targets map[config.Target]bool
	log     *slog.Logger
	rec     metrics.Recorder
	summary Summary
}

// Run executes one generation pass. The first error aborts the run.
func (g *Generator) Run(ctx context.Context, opts Options) (Summary, error) {
	start := time.Now()
	r, err := g.prepare(opts)
	if err == nil {
		err = g.execute(ctx, r)
	}

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	g.recorder.IncRunOutcome(outcome)
	g.recorder.ObserveRunDuration(time.Since(start))

	if r == nil {
		return Summary{}, err
	}
	r.summary.Duration = time.Since(start)
	if err != nil {
		r.log.Debug("Generation failed", logfields.Error(err))
		return r.summary, err
	}
	for _, k := range r.summary.Skipped {
		r.log.Info("Kind not declared in spec, skipped", logfields.Kind(string(k)))
	}
	r.log.Info("Generation complete",
		logfields.Count(len(r.summary.Outputs)),
		logfields.DurationMS(float64(r.summary.Duration.Milliseconds())))
	return r.summary, nil
}

func (g *Generator) prepare(opts Options) (*run, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to determine working directory").Fatal().Build()
		}
		workDir = wd
	}

	spec, err := config.Load(workDir, opts.SpecPath)
	if err != nil {
		return nil, err
	}
	applyHubOverrides(&spec.Hub, opts)
	if checker, ok := g.fetcher.(HubChecker); ok {
		if err := checker.Check(spec.Hub); err != nil {
			return nil, err
		}
	}

	kinds := opts.Kinds
	var skipped []config.Kind
	if len(kinds) == 0 {
		kinds = spec.DefaultKinds()
		skipped = omittedKinds(kinds)
	}
	if err := spec.Validate(kinds); err != nil {
		return nil, err
	}
	layout, err := config.ResolveLayout(spec, opts.Overrides)
	if err != nil {
		return nil, err
	}

	targets := opts.Targets
	if len(targets) == 0 {
		targets = config.AllTargets
	}
	selected := make(map[config.Target]bool, len(targets))
	for _, t := range targets {
		selected[t] = true
	}

	runID := uuid.NewString()
	return &run{
		opts:    opts,
		workDir: workDir,
		spec:    spec,
		layout:  layout,
		kinds:   kinds,
		targets: selected,
		log:     slog.With(logfields.RunID(runID)),
		rec:     g.recorder,
		summary: Summary{RunID: runID, Repo: spec.Hub.URL, Branch: spec.Hub.Branch, Skipped: skipped},
	}, nil
}

// omittedKinds lists the kinds of config.AllKinds missing from kinds.
func omittedKinds(kinds []config.Kind) []config.Kind {
	var out []config.Kind
	for _, k := range config.AllKinds {
		if !slices.Contains(kinds, k) {
			out = append(out, k)
		}
	}
	return out
}

func applyHubOverrides(hub *config.HubConfig, opts Options) {
	if opts.Repo != "" {
		hub.URL = opts.Repo
	}
	if opts.Branch != "" {
		hub.Branch = opts.Branch
	}
	switch {
	case opts.Depth < 0:
		hub.Depth = 0
	case opts.Depth > 0:
		hub.Depth = opts.Depth
	}
}

func (g *Generator) execute(ctx context.Context, r *run) error {
	if !r.opts.SkipGitignore {
		added, ierr := gitignore.EnsurePatterns(r.workDir, r.ignoreTargets())
		if ierr != nil {
			return ierr
		}
		if len(added) > 0 {
			r.log.Info("Updated ignore file", logfields.Path(gitignore.FileName), logfields.Patterns(added))
		}
		r.summary.IgnoreAdded = added
	}

	fetchStart := time.Now()
	snap, err := g.fetcher.Fetch(ctx, r.spec.Hub)
	r.rec.ObserveFetchDuration(time.Since(fetchStart), err == nil)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := snap.Release(); rerr != nil {
			r.log.Warn("Failed to release hub snapshot", logfields.Path(snap.Root), logfields.Error(rerr))
		}
	}()
	r.summary.Repo, r.summary.Branch, r.summary.Commit = snap.URL, snap.Branch, snap.Commit
	r.log.Info("Hub snapshot ready", logfields.URL(snap.URL), logfields.Branch(snap.Branch), logfields.Commit(snap.Commit))

	resolved := make(map[config.Kind][]string, len(r.kinds))
	for _, kind := range r.kinds {
		docs, rerr := sources.Resolve(r.spec.Entry(kind).Sources, snap.Root, string(kind))
		if rerr != nil {
			return rerr
		}
		r.log.Debug("Resolved sources", logfields.Kind(string(kind)), logfields.Count(len(docs)))
		resolved[kind] = docs
	}

	prov := output.Provenance{Repo: snap.URL, Branch: snap.Branch}
	for _, kind := range r.kinds {
		if err := ctx.Err(); err != nil {
			return errors.WrapError(err, errors.CategoryRuntime, "generation cancelled").Build()
		}
		docs, perr := r.prepareDocs(kind, snap, resolved[kind])
		if perr != nil {
			return perr
		}
		if kind == config.KindSkills {
			err = r.writeSkills(docs, prov)
		} else {
			err = r.writeRules(docs, prov)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ignoreTargets lists the output paths of every selected (kind, target) pair.
func (r *run) ignoreTargets() []string {
	var out []string
	for _, kind := range r.kinds {
		switch kind {
		case config.KindRules:
			if r.targets[config.TargetCursor] {
				out = append(out, r.layout.RulesTree)
			}
			if r.targets[config.TargetCodex] {
				out = append(out, r.layout.RulesBundle)
			}
		case config.KindSkills:
			out = append(out, r.layout.SkillsCanonical)
			if r.targets[config.TargetCursor] {
				out = append(out, r.layout.SkillsCursor)
			}
			if r.targets[config.TargetCodex] {
				out = append(out, r.layout.SkillsCodex)
			}
		}
	}
	return out
}

func (r *run) abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.workDir, p)
}

func (r *run) prepareDocs(kind config.Kind, snap git.Snapshot, rels []string) ([]preparedDoc, error) {
	overlay, err := r.readOverlays(kind)
	if err != nil {
		return nil, err
	}

	docs := make([]preparedDoc, 0, len(rels))
	for _, rel := range rels {
		path := filepath.Join(snap.Root, filepath.FromSlash(rel))
		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, errors.WrapError(rerr, errors.CategoryFileSystem, "failed to read source document").
				Fatal().
				WithContext("path", rel).
				Build()
		}
		doc := content.Prepare(string(raw), overlay)
		warnings := content.LintMarkers(doc.Body)
		for _, w := range warnings {
			r.log.Warn("Malformed target marker kept as content",
				logfields.Kind(string(kind)),
				logfields.File(rel),
				slog.Int("line", w.Line),
				slog.String("reason", w.Reason))
		}
		r.summary.Warnings += len(warnings)
		r.rec.AddMarkerWarnings(len(warnings))
		docs = append(docs, preparedDoc{rel: rel, doc: doc})
	}
	return docs, nil
}

func (r *run) readOverlays(kind config.Kind) (string, error) {
	paths := r.spec.Entry(kind).Overlays
	texts := make([]string, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(r.abs(p))
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.ConfigError("overlay file not found: "+p).
					WithContext("kind", string(kind)).
					WithContext("path", p).
					Build()
			}
			return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to read overlay").
				Fatal().
				WithContext("path", p).
				Build()
		}
		texts = append(texts, string(data))
	}
	return content.JoinOverlays(texts), nil
}

func (r *run) writeRules(docs []preparedDoc, prov output.Provenance) error {
	if r.targets[config.TargetCursor] {
		tree := output.TreeWriter{Root: r.abs(r.layout.RulesTree), Mapping: output.RulesMapping}
		for _, d := range docs {
			path, err := tree.Write(d.rel, output.Artifact(d.doc.Render(cursorTreeAudience), prov))
			if err != nil {
				return err
			}
			r.log.Debug("Wrote rule", logfields.File(d.rel), logfields.Path(path))
		}
		r.record(Output{Kind: config.KindRules, Target: string(config.TargetCursor), Shape: output.ShapeMirroredTree, Path: r.layout.RulesTree, Documents: len(docs)})
		r.rec.AddArtifacts(string(output.ShapeMirroredTree), len(docs))
	}

	if r.targets[config.TargetCodex] {
		bundle := output.NewBundle(prov)
		for _, d := range docs {
			bundle.Add(d.rel, d.doc.Render(codexBundleAudience), output.RulesMapping.Within(r.layout.RulesTree, d.rel))
		}
		if err := bundle.WriteFile(r.abs(r.layout.RulesBundle)); err != nil {
			return err
		}
		r.record(Output{Kind: config.KindRules, Target: string(config.TargetCodex), Shape: output.ShapeBundle, Path: r.layout.RulesBundle, Documents: bundle.Len()})
		r.rec.AddArtifacts(string(output.ShapeBundle), 1)
	}
	return nil
}

func (r *run) writeSkills(docs []preparedDoc, prov output.Provenance) error {
	canonical := r.abs(r.layout.SkillsCanonical)
	tree := output.TreeWriter{Root: canonical, Mapping: output.SkillsMapping}
	for _, d := range docs {
		if _, err := tree.Write(d.rel, output.Artifact(d.doc.Render(canonicalAudience), prov)); err != nil {
			return err
		}
	}
	r.record(Output{Kind: config.KindSkills, Target: targetAgent, Shape: output.ShapeMirroredTree, Path: r.layout.SkillsCanonical, Documents: len(docs)})
	r.rec.AddArtifacts(string(output.ShapeMirroredTree), len(docs))

	for _, link := range []struct {
		target config.Target
		path   string
	}{
		{config.TargetCursor, r.layout.SkillsCursor},
		{config.TargetCodex, r.layout.SkillsCodex},
	} {
		if !r.targets[link.target] {
			continue
		}
		out := Output{Kind: config.KindSkills, Target: string(link.target), Shape: output.ShapeSymlink, Path: link.path, Documents: len(docs)}
		linkPath := r.abs(link.path)
		if linkPath == canonical {
			out.Action = output.LinkUnchanged
			r.record(out)
			continue
		}
		action, err := output.ConvergeLink(linkPath, canonical)
		if err != nil {
			return err
		}
		out.Action = action
		r.log.Debug("Converged skills link", logfields.Target(string(link.target)), logfields.Path(link.path), logfields.Action(string(action)))
		r.record(out)
		r.rec.AddArtifacts(string(output.ShapeSymlink), 1)
	}
	return nil
}

func (r *run) record(o Output) {
	r.summary.Outputs = append(r.summary.Outputs, o)
	r.rec.AddDocuments(string(o.Kind), o.Target, o.Documents)
	r.log.Info("Generated output",
		logfields.Kind(string(o.Kind)),
		logfields.Target(o.Target),
		logfields.Shape(string(o.Shape)),
		logfields.Path(o.Path),
		logfields.Count(o.Documents))
}
