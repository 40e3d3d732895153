// Package runner loads Go packages and runs the discarded-result detector
// over them, one pass per package.
package runner

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/mpyw/retval/internal/detector"
	"github.com/mpyw/retval/internal/funcspec"
	"github.com/mpyw/retval/internal/log"
	"github.com/mpyw/retval/internal/marker"
	"github.com/mpyw/retval/internal/report"
)

// ErrLoad is returned when the package patterns cannot be listed.
var ErrLoad = errors.New("package load failed")

// Options configures a run.
type Options struct {
	Dir      string          // working directory of the go command
	Patterns []string        // package patterns, default ./...
	Tests    bool            // include test files
	Funcs    []funcspec.Spec // additional must-use functions
	Jobs     int             // parallel passes, 0 means GOMAXPROCS
	Logger   *log.Logger
}

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps

// Run loads the packages matched by opts and returns the diagnostics of all
// of them, sorted by file, line and column.
func Run(ctx context.Context, opts Options) ([]report.Diagnostic, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     opts.Dir,
		Tests:   opts.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: no packages matched %s", ErrLoad, strings.Join(patterns, " "))
	}

	if err := listErrors(pkgs); err != nil {
		return nil, err
	}

	opts.Logger.Printf("loaded %d packages", len(pkgs))

	// Markers from every loaded package, roots and dependencies alike.
	// The table is read-only once the passes start.
	table := marker.NewTable()
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		if p.TypesInfo != nil {
			table.AddFiles(p.Syntax, p.TypesInfo)
		}
	})

	predicate := marker.NewPredicate(opts.Funcs, table)
	owners := assignFiles(pkgs)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([][]report.Diagnostic, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			opts.Logger.Printf("skipping %s: %v", pkg.ID, pkg.Errors[0])
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = scanPackage(pkg, predicate, owners)
			opts.Logger.Printf("%s: %d diagnostics", pkg.ID, len(results[i]))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []report.Diagnostic
	for _, r := range results {
		all = append(all, r...)
	}

	report.Sort(all)

	return all, nil
}

// scanPackage runs one detector pass over the files owned by pkg.
func scanPackage(pkg *packages.Package, predicate *marker.Predicate, owners map[string]*packages.Package) []report.Diagnostic {
	skipFiles := make(map[string]bool)

	for _, file := range pkg.Syntax {
		filename := pkg.Fset.Position(file.Pos()).Filename
		if owners[filename] != pkg || ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	d := detector.New(detector.TypesResolver{Info: pkg.TypesInfo}, predicate)

	return d.ScanFiles(pkg.Fset, pkg.Syntax, skipFiles)
}

// assignFiles picks the package that reports on each file. With Tests set,
// a package's files also appear in its test variant; the variant owns them
// so every file is scanned once.
func assignFiles(pkgs []*packages.Package) map[string]*packages.Package {
	owners := make(map[string]*packages.Package)

	claim := func(pkg *packages.Package) {
		if len(pkg.Errors) > 0 {
			return
		}

		for _, file := range pkg.Syntax {
			filename := pkg.Fset.Position(file.Pos()).Filename
			if _, taken := owners[filename]; !taken {
				owners[filename] = pkg
			}
		}
	}

	// Test variants first: "p [p.test]" is a superset of "p".
	for _, pkg := range pkgs {
		if isTestVariant(pkg) {
			claim(pkg)
		}
	}

	for _, pkg := range pkgs {
		if !isTestVariant(pkg) {
			claim(pkg)
		}
	}

	return owners
}

func isTestVariant(pkg *packages.Package) bool {
	return strings.HasSuffix(pkg.ID, ".test]")
}

// listErrors reports errors of the go list step, which leave nothing to analyze.
func listErrors(pkgs []*packages.Package) error {
	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.ListError {
				errs = append(errs, e)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrLoad, errors.Join(errs...))
}
