package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/lexc/internal/config"
	"github.com/specialistvlad/lexc/internal/ctxlog"
	"github.com/specialistvlad/lexc/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL project loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and translates all program blocks
// into the model. Locals from any file are visible to programs in every file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	var files []*parsedFile
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		pf := &parsedFile{path: file}
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &pf.root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		files = append(files, pf)
	}

	locals, err := evalLocals(ctx, files)
	if err != nil {
		return nil, err
	}
	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{"local": locals}}

	model := &config.Model{}
	outputs := make(map[string]*config.Program)
	for _, f := range files {
		for _, block := range f.root.Programs {
			if prev := model.Program(block.Name); prev != nil {
				return nil, fmt.Errorf("duplicate program %q in %s (first defined in %s)", block.Name, f.path, prev.DefinedIn)
			}
			program, err := l.translateProgram(ctx, f.path, block, evalCtx)
			if err != nil {
				return nil, err
			}
			if prev, dup := outputs[program.Output]; dup {
				return nil, fmt.Errorf("program %q in %s writes to %s, already used by program %q (first defined in %s)",
					program.Name, f.path, program.Output, prev.Name, prev.DefinedIn)
			}
			outputs[program.Output] = program
			model.Programs = append(model.Programs, program)
		}
	}

	logger.Debug("HCL loading complete.", "programs", len(model.Programs))
	return model, nil
}

// translateProgram evaluates a program block into the agnostic model. Relative
// paths are resolved against the directory of the declaring file.
func (l *Loader) translateProgram(ctx context.Context, file string, b *programBlock, evalCtx *hcl.EvalContext) (*config.Program, error) {
	logger := ctxlog.FromContext(ctx).With("program", b.Name)
	baseDir := filepath.Dir(file)

	source, hasSource, err := evalString(ctx, b.Source, evalCtx, "source")
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", b.Name, err)
	}
	sourceFile, hasSourceFile, err := evalString(ctx, b.SourceFile, evalCtx, "source_file")
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", b.Name, err)
	}
	output, hasOutput, err := evalString(ctx, b.Output, evalCtx, "output")
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", b.Name, err)
	}

	switch {
	case hasSource && hasSourceFile:
		return nil, fmt.Errorf("program %q: only one of \"source\" or \"source_file\" may be set", b.Name)
	case !hasSource && !hasSourceFile:
		return nil, fmt.Errorf("program %q: one of \"source\" or \"source_file\" is required", b.Name)
	}

	if !hasOutput || output == "" {
		output = b.Name + ".cpp"
	}

	p := &config.Program{
		Name:      b.Name,
		Source:    source,
		Output:    resolvePath(baseDir, output),
		DefinedIn: file,
	}
	if hasSourceFile {
		p.SourceFile = resolvePath(baseDir, sourceFile)
	}

	logger.Debug("Program translated.", "source_file", p.SourceFile, "output", p.Output)
	return p, nil
}

// findAllHCLFiles walks all given paths and returns a flat, de-duplicated list
// of .hcl files.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
