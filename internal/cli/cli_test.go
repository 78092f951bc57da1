package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/scene"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScenesCmd(t *testing.T) {
	out, err := runCmd(t, "scenes")
	require.NoError(t, err)
	for _, name := range scene.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "420x300")
}

func TestLayoutCmd(t *testing.T) {
	out, err := runCmd(t, "layout", "about", "--no-color")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "about 420x300\n"), out)
	assert.Contains(t, out, `button "OK" #1002`)
	assert.Contains(t, out, "335")
	assert.Contains(t, out, `link "Visit GitHub Repository"`)
}

func TestLayoutCmd_Canvas(t *testing.T) {
	out, err := runCmd(t, "layout", "buttons", "--canvas", "--no-color", "-W", "600")
	require.NoError(t, err)
	assert.Contains(t, out, "Grow Large")
	assert.Contains(t, out, "┌")
}

func TestLayoutCmd_Errors(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"unknown scene":  {args: []string{"layout", "nope"}, wantErr: "unknown scene"},
		"negative width": {args: []string{"layout", "about", "--width", "-1"}, wantErr: "must not be negative"},
		"missing arg":    {args: []string{"layout"}, wantErr: "accepts 1 arg"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runCmd(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[measure]\nline_height = 0\n"), 0o644))
	_, err := runCmd(t, "--config", bad, "scenes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line_height")

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("[layout]\nwidth = 300\nheight = 200\n"), 0o644))
	scenePath := filepath.Join(dir, "plain.toml")
	require.NoError(t, os.WriteFile(scenePath, []byte("[root]\ntype = \"text\"\ntext = \"hi\"\n"), 0o644))

	out, err := runCmd(t, "--config", good, "layout", scenePath, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "300x200")
}

func TestTreeCmd_DOT(t *testing.T) {
	out, err := runCmd(t, "tree", "vertical")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph layout {"), out)
	assert.Contains(t, out, "n0 -> n1;")
}

func TestTreeCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "about.dot")
	out, err := runCmd(t, "tree", "about", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `button \"OK\" #1002`)
}

func TestTreeFormat(t *testing.T) {
	tests := map[string]struct {
		flag, output string
		want         string
		wantErr      bool
	}{
		"default":        {want: formatDOT},
		"from extension": {output: "out.SVG", want: formatSVG},
		"gv extension":   {output: "out.gv", want: formatDOT},
		"flag wins":      {flag: "dot", output: "out.svg", want: formatDOT},
		"unsupported":    {output: "out.png", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := treeFormat(tc.flag, tc.output)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSweepWidths(t *testing.T) {
	tests := map[string]struct {
		from, to, step int
		want           []int
		wantErr        bool
	}{
		"even":          {from: 100, to: 300, step: 100, want: []int{100, 200, 300}},
		"uneven":        {from: 100, to: 250, step: 100, want: []int{100, 200, 250}},
		"single":        {from: 50, to: 50, step: 10, want: []int{50}},
		"bad step":      {from: 1, to: 2, step: 0, wantErr: true},
		"from above to": {from: 3, to: 2, step: 1, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := sweepWidths(tc.from, tc.to, tc.step)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSweep_OrderedAndIndependent(t *testing.T) {
	s, err := scene.Lookup("buttons")
	require.NoError(t, err)

	widths := []int{300, 400, 500, 600, 700}
	rows, err := sweep(context.Background(), s, widths, 60, 3)
	require.NoError(t, err)
	require.Len(t, rows, len(widths))

	for i, r := range rows {
		assert.Equal(t, widths[i], r.width)
		assert.GreaterOrEqual(t, r.root.Width, r.width)
		assert.Len(t, r.leaves, 5)
	}
	// Fixed button keeps its width at every size.
	for _, r := range rows {
		assert.Equal(t, 75, r.leaves[0])
	}
}

func TestSweepCmd(t *testing.T) {
	out, err := runCmd(t, "sweep", "buttons", "--from", "400", "--to", "600", "--step", "100", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Width")
	assert.Contains(t, out, "600x60")
	assert.Contains(t, out, "500x60")
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewModel(t *testing.T) {
	s, err := scene.Lookup("buttons")
	require.NoError(t, err)
	root, err := s.Build()
	require.NoError(t, err)

	cfg := config.Default()
	m := newPreviewModel(context.Background(), s.Name, root, cfg, 600, 60)
	assert.Equal(t, 600, m.bounds.Width)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 592, m.width)
	assert.Equal(t, 592, m.bounds.Width)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 76, m.height)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	assert.Equal(t, 800, m.width)
	assert.Equal(t, 288, m.height)

	m.Update(keyRunes("l"))
	assert.Equal(t, 808, m.width)
	m.Update(keyRunes("r"))
	assert.Equal(t, 800, m.width)

	view := m.View()
	assert.Contains(t, view, "buttons  800x288")
	assert.Contains(t, view, "Grow Small")

	_, cmd := m.Update(keyRunes("q"))
	assert.NotNil(t, cmd)
}

func TestPreviewModel_Overflow(t *testing.T) {
	s, err := scene.Lookup("buttons")
	require.NoError(t, err)
	root, err := s.Build()
	require.NoError(t, err)

	m := newPreviewModel(context.Background(), s.Name, root, config.Default(), 100, 60)
	assert.Contains(t, m.View(), "overflow")
}

func TestNewLogger(t *testing.T) {
	tests := map[string]struct {
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		"info at info level":   {level: log.InfoLevel, logFunc: func(l *log.Logger) { l.Info("test") }, wantLog: true},
		"debug at info level":  {level: log.InfoLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: false},
		"debug at debug level": {level: log.DebugLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.logFunc(newLogger(&buf, tc.level))
			assert.Equal(t, tc.wantLog, buf.Len() > 0)
		})
	}
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, log.Default(), loggerFromContext(ctx))
	assert.Equal(t, config.Default(), configFromContext(ctx))

	l := log.New(&bytes.Buffer{})
	cfg := config.Default()
	cfg.Layout.Width = 1
	ctx = withConfig(withLogger(ctx, l), cfg)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.Same(t, cfg, configFromContext(ctx))
}
