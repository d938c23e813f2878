package deploy

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiloon/enxkit/pkg/testutil"
)

func TestBuildPlan(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithFiles(map[string]string{
			"a.txt":     "visit enx.wiloon.com today",
			"sub/c.txt": "enx.wiloon.com/enx.wiloon.com",
		}).
		WithBinary("b.bin", []byte{0xFF, 0xFE, 0x00, 0x01})
	testutil.WriteTree(t, env.FS, env.DestRoot, map[string][]byte{"old.txt": []byte("x")})

	plan, err := BuildPlan(env.FS, Options{
		SourceRoot: env.SourceRoot,
		DestRoot:   env.DestRoot,
		Rule:       DefaultRule(),
	})
	require.NoError(t, err)

	require.Len(t, plan.Actions, 4)
	assert.Equal(t, ActionReset, plan.Actions[0].Type)
	assert.Equal(t, env.DestRoot, plan.Actions[0].Target)
	assert.Equal(t, 3, plan.Files())
	assert.Equal(t, 1, plan.Skipped)

	byRel := make(map[string]Action)
	for _, a := range plan.Actions[1:] {
		byRel[a.RelPath] = a
	}

	text := byRel["a.txt"]
	assert.Equal(t, ActionWrite, text.Type)
	assert.Equal(t, env.Source("a.txt"), text.Source)
	assert.Equal(t, env.Dest("a.txt"), text.Target)
	assert.Equal(t, "visit enx-dev.wiloon.com today", string(text.Content))
	assert.Equal(t, 1, text.Replacements)
	assert.Equal(t, int64(30), text.Size)

	nested := byRel["sub/c.txt"]
	assert.Equal(t, 2, nested.Replacements)
	assert.Equal(t, env.Dest("sub/c.txt"), nested.Target)

	bin := byRel["b.bin"]
	assert.Equal(t, ActionCopy, bin.Type)
	assert.Nil(t, bin.Content)
	assert.Equal(t, int64(4), bin.Size)

	// Planning never touches the destination.
	dest := testutil.ReadTree(t, env.FS, env.DestRoot, "")
	assert.Equal(t, []string{"old.txt"}, testutil.RelPaths(dest))
}

func TestPlan_Summary(t *testing.T) {
	plan := &Plan{
		Skipped: 2,
		Actions: []Action{
			{Type: ActionReset},
			{Type: ActionWrite, Size: 10, Replacements: 3},
			{Type: ActionCopy, Size: 5},
		},
	}

	s := plan.Summary()
	assert.True(t, s.DryRun)
	assert.Equal(t, 2, s.Files)
	assert.Equal(t, int64(15), s.Bytes)
	assert.Equal(t, 1, s.TextFiles)
	assert.Equal(t, 1, s.BinaryFiles)
	assert.Equal(t, 3, s.Replacements)
	assert.Equal(t, 2, s.Skipped)
}

func TestSummary_Line(t *testing.T) {
	assert.Equal(t, "Copied 0 files, total 0 bytes.", Summary{}.Line())
	assert.Equal(t, "Copied 3 files, total 1024 bytes.", Summary{Files: 3, Bytes: 1024}.Line())
	assert.Equal(t, "Would copy 1 files, total 7 bytes.", Summary{Files: 1, Bytes: 7, DryRun: true}.Line())
}

func TestBuildPlan_LogsKindAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithFiles(map[string]string{"a.txt": "enx.wiloon.com"}).
		WithBinary("b.bin", []byte{0xFF})

	_, err := BuildPlan(env.FS, Options{SourceRoot: env.SourceRoot, DestRoot: env.DestRoot, Rule: DefaultRule()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"kind":"text"`)
	assert.Contains(t, out, `"kind":"binary"`)
}
