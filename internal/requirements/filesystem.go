package requirements

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"bddreport/internal/env"
	"bddreport/internal/model"
	"bddreport/internal/narrative"
)

// FileSystemTagProvider derives requirement tags from story and feature
// paths and reads their narratives from the requirements directory.
type FileSystemTagProvider struct {
	Provider
	loader *narrative.Loader
	logger *zap.Logger
}

// NewFileSystemTagProvider configures a provider from vars.
func NewFileSystemTagProvider(vars env.Variables, logger *zap.Logger) (*FileSystemTagProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	loader, err := narrative.NewLoader(vars, logger)
	if err != nil {
		return nil, err
	}
	return &FileSystemTagProvider{
		Provider: NewProvider(NewConfiguration(vars)),
		loader:   loader,
		logger:   logger,
	}, nil
}

// Name identifies the provider in logs and listings.
func (p *FileSystemTagProvider) Name() string {
	return "filesystem"
}

// storyElements returns the path elements below the requirements root.
func (p *FileSystemTagProvider) storyElements(path string) []string {
	return stripRoot(PathElements(path), p.config.rootElements())
}

// TagsFor returns one tag per path level: capability, feature, then story
// for a three level path.
func (p *FileSystemTagProvider) TagsFor(outcome model.TestOutcome) *model.TagSet {
	tags := model.NewTagSet()
	if strings.TrimSpace(outcome.Path) == "" {
		return tags
	}
	leaf := p.chainFor(p.storyElements(outcome.Path))
	if leaf == nil {
		return tags
	}
	for _, requirement := range leaf.Ancestry() {
		tags.Add(requirement.AsTag())
	}
	return tags
}

// chainFor builds the parent-linked requirement chain for elements and
// returns its deepest node.
func (p *FileSystemTagProvider) chainFor(elements []string) *model.Requirement {
	var parent *model.Requirement
	maxDepth := len(elements) - 1
	for level, element := range elements {
		requirement := &model.Requirement{
			Name: p.HumanReadable(element),
			Type: p.DefaultType(level, maxDepth),
		}
		if parent != nil {
			parent.AddChild(requirement)
		}
		parent = requirement
	}
	return parent
}

// ParentRequirementOf returns the story-level requirement of outcome, with
// narratives loaded for it and for each enclosing directory.
func (p *FileSystemTagProvider) ParentRequirementOf(outcome model.TestOutcome) (*model.Requirement, bool) {
	if outcome.UserStory == nil || strings.TrimSpace(outcome.Path) == "" {
		return nil, false
	}
	_, suffix := StripSuffix(strings.TrimSpace(outcome.Path))
	elements := p.storyElements(outcome.Path)
	leaf := p.chainFor(elements)
	if leaf == nil {
		return nil, false
	}

	root := p.config.RootPath()
	chain := leaf.Ancestry()
	for level, requirement := range chain {
		dir := filepath.Join(append([]string{root}, elements[:level]...)...)
		if level < len(chain)-1 {
			requirement.Path = filepath.Join(dir, elements[level])
			p.attachNarrative(requirement, requirement.Path)
			continue
		}
		if path, ok := resolveStoryFile(dir, elements[level], suffix); ok {
			requirement.Path = path
			p.attachNarrative(requirement, path)
		}
	}
	return leaf, true
}

// resolveStoryFile finds name with the given suffix, then .story, then .feature.
func resolveStoryFile(dir, name, suffix string) (string, bool) {
	suffixes := []string{narrative.StorySuffix, narrative.FeatureSuffix}
	if suffix != "" {
		suffixes = append([]string{suffix}, suffixes...)
	}
	for _, candidate := range suffixes {
		path := filepath.Join(dir, name+candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func (p *FileSystemTagProvider) attachNarrative(requirement *model.Requirement, path string) {
	loaded, ok, err := p.loader.Load(path)
	if err != nil {
		p.logger.Warn("skip narrative", zap.String("requirement", requirement.Name), zap.Error(err))
		return
	}
	if ok {
		requirement.Narrative = loaded
	}
}

// Requirements reads the whole requirements tree below the root directory.
// Narrative errors do not stop the walk; they are returned together with
// the tree.
func (p *FileSystemTagProvider) Requirements() ([]*model.Requirement, error) {
	root := p.config.RootPath()
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat requirements root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("requirements root %q is not a directory", root)
	}

	walker := &treeWalker{provider: p}
	roots, err := walker.readDir(root, nil)
	if err != nil {
		return nil, err
	}
	maxDepth := 0
	for _, requirement := range roots {
		requirement.Walk(func(_ *model.Requirement, depth int) {
			if depth > maxDepth {
				maxDepth = depth
			}
		})
	}
	for _, requirement := range roots {
		requirement.Walk(func(node *model.Requirement, depth int) {
			if node.Narrative != nil && node.Narrative.Type != "" {
				node.Type = node.Narrative.Type
				return
			}
			node.Type = p.DefaultType(depth, maxDepth)
		})
	}
	return roots, walker.errs.ErrorOrNil()
}

type treeWalker struct {
	provider *FileSystemTagProvider
	errs     *multierror.Error
}

func (w *treeWalker) readDir(dir string, parent *model.Requirement) ([]*model.Requirement, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read requirements dir %q: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	nodes := make([]*model.Requirement, 0)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		switch {
		case entry.IsDir():
			node := &model.Requirement{Name: w.provider.HumanReadable(name), Path: path}
			w.load(node, path)
			if parent != nil {
				parent.AddChild(node)
			}
			if _, err := w.readDir(path, node); err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		case narrative.IsRequirementFile(name):
			base, _ := StripSuffix(name)
			node := &model.Requirement{Name: w.provider.HumanReadable(base), Path: path}
			w.load(node, path)
			if parent != nil {
				parent.AddChild(node)
			}
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

func (w *treeWalker) load(node *model.Requirement, path string) {
	loaded, ok, err := w.provider.loader.Load(path)
	if err != nil {
		w.errs = multierror.Append(w.errs, fmt.Errorf("%s: %w", path, err))
		return
	}
	if ok {
		node.Narrative = loaded
	}
}
