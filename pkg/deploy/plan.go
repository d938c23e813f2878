package deploy

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/logging"
	"github.com/wiloon/enxkit/pkg/types"
)

// ActionType names the kind of work an Action performs
type ActionType string

const (
	// ActionReset removes the destination tree and recreates it empty
	ActionReset ActionType = "reset"
	// ActionWrite writes rewritten text content
	ActionWrite ActionType = "write"
	// ActionCopy copies a binary file byte-for-byte, keeping mode and mtime
	ActionCopy ActionType = "copy"
)

// Default permissions for created entries
const (
	dirMode  fs.FileMode = 0755
	textMode fs.FileMode = 0644
)

// Action is one planned step of a deploy run
type Action struct {
	Type ActionType

	// Source is the file read for this action; empty for reset
	Source string
	// Target is the path written (or reset)
	Target string
	// RelPath is Target relative to the destination root
	RelPath string

	// Content holds the rewritten text of a write action
	Content []byte
	// Replacements counts rule matches in a write action
	Replacements int

	// Mode and ModTime are carried over by copy actions
	Mode    fs.FileMode
	ModTime time.Time

	// Size is the planned number of bytes written
	Size int64
}

// IsFile reports whether the action produces a destination file
func (a Action) IsFile() bool {
	return a.Type == ActionWrite || a.Type == ActionCopy
}

// Plan is the ordered list of actions for one run
type Plan struct {
	SourceRoot string
	DestRoot   string
	Rule       ReplacementRule
	Actions    []Action

	// Skipped counts entries ignored during the walk: the destination
	// subtree, symlinked directories and irregular files.
	Skipped int
}

// Files returns the number of file-producing actions
func (p *Plan) Files() int {
	n := 0
	for _, a := range p.Actions {
		if a.IsFile() {
			n++
		}
	}
	return n
}

// Summary reports the plan as if it had been executed. Byte counts are the
// planned sizes.
func (p *Plan) Summary() Summary {
	s := Summary{DryRun: true, Skipped: p.Skipped}
	for _, a := range p.Actions {
		if a.IsFile() {
			s.record(a, a.Size)
		}
	}
	return s
}

// BuildPlan validates opts and walks the source tree. The destination is not
// touched.
func BuildPlan(fsys types.FS, opts Options) (*Plan, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("deploy.plan").With().
		Str("source", opts.SourceRoot).
		Str("destination", opts.DestRoot).
		Logger()
	defer logging.LogOperationStart(logger, "plan")()

	info, err := fsys.Stat(opts.SourceRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrFileNotFound, "source root does not exist").
				WithDetail("path", opts.SourceRoot)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access source root").
			WithDetail("path", opts.SourceRoot)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "source root is not a directory").
			WithDetail("path", opts.SourceRoot)
	}

	plan := &Plan{
		SourceRoot: opts.SourceRoot,
		DestRoot:   opts.DestRoot,
		Rule:       opts.Rule,
		Actions:    []Action{{Type: ActionReset, Target: opts.DestRoot}},
	}

	p := &planner{fsys: fsys, plan: plan, logger: logger, walkRoot: opts.SourceRoot, skipRoot: opts.DestRoot}
	if err := p.resolveRoot(); err != nil {
		return nil, err
	}
	if err := fsys.Walk(p.walkRoot, p.visit); err != nil {
		return nil, err
	}

	logger.Info().
		Int("files", plan.Files()).
		Int("skipped", plan.Skipped).
		Msg("Plan built")
	return plan, nil
}

type planner struct {
	fsys   types.FS
	plan   *Plan
	logger zerolog.Logger

	// walkRoot is the source root with a top-level symlink resolved, and
	// skipRoot the destination expressed below it
	walkRoot string
	skipRoot string
}

// resolveRoot follows a symlinked source root. Walk lstats its root, so
// walking the link itself would visit nothing.
func (p *planner) resolveRoot() error {
	info, err := p.fsys.Lstat(p.walkRoot)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return nil
	}

	resolved, err := filepath.EvalSymlinks(p.walkRoot)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot resolve source root").
			WithDetail("path", p.walkRoot)
	}
	if isWithin(p.skipRoot, p.walkRoot) {
		rel, err := filepath.Rel(p.walkRoot, p.skipRoot)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot compute relative path").
				WithDetail("path", p.skipRoot)
		}
		p.skipRoot = filepath.Join(resolved, rel)
	}

	p.logger.Debug().Str("resolved", resolved).Msg("Source root is a symlink")
	p.walkRoot = resolved
	return nil
}

func (p *planner) visit(path string, info fs.FileInfo, err error) error {
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot walk source tree").
			WithDetail("path", path)
	}

	if isWithin(path, p.skipRoot) {
		p.plan.Skipped++
		p.logger.Debug().Str("path", path).Msg("Skipping destination subtree")
		if info.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}

	if info.IsDir() {
		return nil
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := p.fsys.Stat(path)
		if err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "cannot resolve symlink").
				WithDetail("path", path)
		}
		if target.IsDir() {
			p.plan.Skipped++
			p.logger.Debug().Str("path", path).Msg("Not following symlinked directory")
			return nil
		}
		info = target
	}

	if !info.Mode().IsRegular() {
		p.plan.Skipped++
		p.logger.Warn().Str("path", path).Str("mode", info.Mode().String()).Msg("Skipping irregular file")
		return nil
	}

	return p.addFile(path, info)
}

func (p *planner) addFile(path string, info fs.FileInfo) error {
	rel, err := filepath.Rel(p.walkRoot, path)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot compute relative path").
			WithDetail("path", path)
	}

	data, err := p.fsys.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileRead, "cannot read source file").
			WithDetail("path", path)
	}

	action := Action{
		Source:  path,
		Target:  filepath.Join(p.plan.DestRoot, rel),
		RelPath: rel,
	}

	content := Classify(data)
	switch content.Kind {
	case KindText:
		result := p.plan.Rule.Apply(content.Text)
		action.Type = ActionWrite
		action.Content = []byte(result.Content)
		action.Replacements = result.ReplacementCount
		action.Mode = textMode
		action.Size = int64(len(action.Content))
	default:
		action.Type = ActionCopy
		action.Mode = info.Mode().Perm()
		action.ModTime = info.ModTime()
		action.Size = int64(len(content.Bytes))
	}

	p.logger.Debug().
		Str("path", rel).
		Str("kind", content.Kind.String()).
		Int("replacements", action.Replacements).
		Msg("Planned file")

	p.plan.Actions = append(p.plan.Actions, action)
	return nil
}
