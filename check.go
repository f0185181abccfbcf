package plottools

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// fileRef is a quoted filename with an extension inside a script
// source, e.g. open('data.csv') or np.load("results.npz").
var fileRef = regexp.MustCompile(`['"]([^'"\n]+\.[A-Za-z0-9]+)['"]`)

// checkedFile is a classified file below the checked directory.
type checkedFile struct {
	rel     string
	modTime time.Time
}

// Check walks a figure directory and verifies the authoring
// conventions: every script has a figure with a matching base
// filename, figures come from scripts, scripts read display data only
// from allowed data files, referenced data exists, and figures are not
// older than their inputs.
//
// Hidden directories and __pycache__ are skipped. Findings are
// deterministic, ordered by path. The returned error reports tool
// failures only; convention violations are findings in the report.
func Check(ctx context.Context, cfg CheckConfig, opts ...Option) (Report, error) {
	o := newOptions(opts)

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %s: %v", ErrStorageError, dir, err)
	}
	if !info.IsDir() {
		return Report{}, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	var (
		scripts []checkedFile
		figures = make(map[string][]checkedFile) // base path → figures
		data    = make(map[string]checkedFile)   // rel path → data file
		nfigs   int
	)

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(name, ".") || name == "__pycache__") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 && !o.followSymlinks {
			o.logDebug("skipping symlink", "path", path)
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(name))
		cf := checkedFile{rel: rel, modTime: fi.ModTime()}
		switch {
		case hasExt(ext, cfg.ScriptExts):
			scripts = append(scripts, cf)
		case hasExt(ext, cfg.FigureExts):
			base := strings.TrimSuffix(rel, filepath.Ext(rel))
			figures[base] = append(figures[base], cf)
			nfigs++
		case hasExt(ext, cfg.DataExts):
			data[filepath.ToSlash(rel)] = cf
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return Report{}, ctx.Err()
		}
		return Report{}, fmt.Errorf("%w: walking %s: %v", ErrStorageError, dir, err)
	}

	sort.Slice(scripts, func(i, j int) bool { return scripts[i].rel < scripts[j].rel })

	report := Report{
		Dir:       dir,
		Scripts:   len(scripts),
		Figures:   nfigs,
		DataFiles: len(data),
	}
	warn := SeverityWarning
	if o.strict {
		warn = SeverityError
	}

	claimed := make(map[string]bool) // figure bases produced by a script

	for _, script := range scripts {
		base := strings.TrimSuffix(script.rel, filepath.Ext(script.rel))
		claimed[base] = true

		figs := figures[base]
		if len(figs) == 0 {
			report.Findings = append(report.Findings, Finding{
				Rule:     RuleMissingFigure,
				Severity: SeverityError,
				Script:   script.rel,
				Path:     script.rel,
				Message:  fmt.Sprintf("no figure %s.{%s} generated by this script", base, extList(cfg.FigureExts)),
			})
		}
		for _, fig := range figs {
			if fig.modTime.Before(script.modTime) {
				report.Findings = append(report.Findings, Finding{
					Rule:     RuleStaleFigure,
					Severity: warn,
					Script:   script.rel,
					Path:     fig.rel,
					Message:  fmt.Sprintf("figure is older than %s, rerun the script", script.rel),
				})
			}
		}

		refs, err := scanDataRefs(filepath.Join(dir, script.rel), cfg)
		if err != nil {
			return Report{}, err
		}
		o.logDebug("scanned script", "script", script.rel, "refs", len(refs))
		for _, ref := range refs {
			if ref.forbidden {
				report.Findings = append(report.Findings, Finding{
					Rule:     RulePickledData,
					Severity: SeverityError,
					Script:   script.rel,
					Path:     ref.path,
					Message:  "scripts must read display data from .npz or .csv files, not pickled data",
				})
				continue
			}
			// Resolve the reference relative to the script.
			rel := filepath.ToSlash(filepath.Join(filepath.Dir(script.rel), ref.path))
			df, ok := data[rel]
			if !ok {
				// References escaping the checked directory never
				// appear in the walk; fall back to a stat.
				abs := filepath.Join(dir, filepath.FromSlash(rel))
				if fi, statErr := os.Stat(abs); statErr == nil && !fi.IsDir() {
					df = checkedFile{rel: rel, modTime: fi.ModTime()}
					ok = true
				}
			}
			if !ok {
				report.Findings = append(report.Findings, Finding{
					Rule:     RuleMissingData,
					Severity: SeverityError,
					Script:   script.rel,
					Path:     ref.path,
					Message:  fmt.Sprintf("data file referenced by %s does not exist", script.rel),
				})
				continue
			}
			for _, fig := range figs {
				if fig.modTime.Before(df.modTime) {
					report.Findings = append(report.Findings, Finding{
						Rule:     RuleStaleFigure,
						Severity: warn,
						Script:   script.rel,
						Path:     fig.rel,
						Message:  fmt.Sprintf("figure is older than %s, rerun the script", df.rel),
					})
				}
			}
		}
	}

	for base, figs := range figures {
		if claimed[base] {
			continue
		}
		for _, fig := range figs {
			report.Findings = append(report.Findings, Finding{
				Rule:     RuleOrphanFigure,
				Severity: warn,
				Path:     fig.rel,
				Message:  fmt.Sprintf("no script %s.{%s} generates this figure", base, extList(cfg.ScriptExts)),
			})
		}
	}

	sort.Slice(report.Findings, func(i, j int) bool {
		a, b := report.Findings[i], report.Findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Rule < b.Rule
	})
	if errs, warns := report.Counts(); errs > 0 || warns > 0 {
		o.logWarn("check finished", "errors", errs, "warnings", warns)
	}
	return report, nil
}

// dataRef is a data-file reference found in a script source.
type dataRef struct {
	path      string
	forbidden bool
}

// scanDataRefs extracts quoted data-file references from a script.
// Only extensions from the allowed and forbidden sets are reported;
// any other quoted filename (module imports, figure output paths) is
// ignored. Duplicate references are collapsed.
func scanDataRefs(path string, cfg CheckConfig) ([]dataRef, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorageError, path, err)
	}
	seen := make(map[string]bool)
	var refs []dataRef
	for _, m := range fileRef.FindAllStringSubmatch(string(src), -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		switch {
		case hasExt(ext, cfg.ForbiddenExts):
			seen[name] = true
			refs = append(refs, dataRef{path: name, forbidden: true})
		case hasExt(ext, cfg.DataExts):
			seen[name] = true
			refs = append(refs, dataRef{path: name})
		}
	}
	return refs, nil
}

// hasExt reports whether ext is one of exts. Comparison is case
// insensitive; exts are expected in lowercase with leading dot.
func hasExt(ext string, exts []string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// extList joins extensions for messages: ".pdf, .png" → "pdf,png".
func extList(exts []string) string {
	trimmed := make([]string, len(exts))
	for i, e := range exts {
		trimmed[i] = strings.TrimPrefix(e, ".")
	}
	return strings.Join(trimmed, ",")
}
