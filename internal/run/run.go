// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/platformguard/internal/astutil"
	"fillmore-labs.com/platformguard/internal/config"
	"fillmore-labs.com/platformguard/internal/engine"
	"fillmore-labs.com/platformguard/internal/evaluate"
	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/host"
	"fillmore-labs.com/platformguard/internal/host/buildtag"
	"fillmore-labs.com/platformguard/internal/host/lower"
	"fillmore-labs.com/platformguard/internal/report"
	"fillmore-labs.com/platformguard/internal/resolve"
	"fillmore-labs.com/platformguard/internal/tracker"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the platformguard analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("platformguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	declared, targets, err := o.setup()
	if err != nil {
		return nil, fmt.Errorf("platformguard: %w", err)
	}

	ctx, task := trace.NewTask(context.Background(), "PlatformGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	logger := o.logger()
	logger.LogAttrs(ctx, slog.LevelDebug, "Analyzing package", slog.String("package", p.Pkg.Path()), slog.Any("options", o))

	// Stage 1: Export the platform annotations of this package as facts
	for _, e := range host.Collect(p) {
		p.Report(analysis.Diagnostic{
			Pos:      e.Pos,
			Category: report.Category,
			Message:  "Invalid platform directive: " + e.Error(),
		})
	}

	graph := host.NewGraph(p, declared)
	if !graph.Constrained() {
		return nil, nil // nothing to check
	}

	resolver := resolve.NewResolver(graph, o.Behavior.Enabled(config.StrictAllowList))
	tr := tracker.New(graph, o.Behavior.Enabled(config.ExtendGuards))
	ev := evaluate.New(resolver, tr, targets, logger)

	// Stage 2: Lower function bodies and package level initializers
	units := o.lower(ctx, p, in, graph)

	tasks := make([]evaluate.Task, len(units))
	for i, u := range units {
		tasks[i] = u.task
	}

	// Stage 3: Evaluate call sites concurrently
	results, _ := engine.Run(ctx, ev, tasks) // errors are reported per task

	// Stage 4: Report in declaration order
	for i, r := range results {
		u := units[i]

		if r.Err != nil {
			astutil.InternalError(p, u.node, "Evaluating %s: %v", host.DisplayName(u.task.Caller), r.Err)
		}

		report.Violations(ctx, p, u.file, r.Violations, host.DisplayName)
	}

	return nil, nil
}

// unit is a task with its reporting context.
type unit struct {
	task evaluate.Task
	file astutil.CurrentFile
	node ast.Node
}

func (o *Options) lower(ctx context.Context, p *analysis.Pass, in *inspector.Inspector, graph *host.Graph) []unit {
	defer trace.StartRegion(ctx, "Lower").End()

	var units []unit

	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		var base []guard.Narrowing
		if o.Behavior.Enabled(config.BuildConstraints) {
			base = buildtag.Narrowings(file, currentFile.BaseName())
		}

		add := func(caller any, node ast.Node, tasks []evaluate.Task) {
			for _, t := range tasks {
				t.Caller, t.Base = caller, base
				units = append(units, unit{task: t, file: currentFile, node: node})
			}
		}

		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				if decl.Body == nil || astutil.DocHasNoLint(decl.Doc) {
					continue
				}

				caller := p.TypesInfo.Defs[decl.Name]
				if caller == nil {
					astutil.InternalError(p, decl.Name, "Function declaration %s without type info", decl.Name.Name)

					continue
				}

				body, err := lower.Func(p.TypesInfo, graph, decl.Body)
				if err != nil {
					astutil.InternalError(p, decl.Name, "Lowering %s: %v", decl.Name.Name, err)
				}

				add(caller, decl, []evaluate.Task{{Body: body}})

			case *ast.GenDecl:
				if decl.Tok != token.VAR || astutil.DocHasNoLint(decl.Doc) {
					continue
				}

				for _, spec := range decl.Specs {
					vs, ok := spec.(*ast.ValueSpec)
					if !ok || len(vs.Values) == 0 || astutil.DocHasNoLint(vs.Doc) {
						continue
					}

					caller := p.TypesInfo.Defs[vs.Names[0]]
					if caller == nil {
						continue
					}

					var tasks []evaluate.Task

					for _, v := range vs.Values {
						body, err := lower.Expr(p.TypesInfo, graph, v)
						if err != nil {
							astutil.InternalError(p, v, "Lowering %s: %v", vs.Names[0].Name, err)
						}

						if len(body) > 0 {
							tasks = append(tasks, evaluate.Task{Body: body})
						}
					}

					add(caller, vs, tasks)
				}
			}
		}
	}

	return units
}
