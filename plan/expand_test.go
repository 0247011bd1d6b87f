package plan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotupsh/dotup-cli/plan"
)

func loadPlan(t *testing.T, doc string) *plan.Plan {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, plan.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	p, err := plan.Load(path)
	require.NoError(t, err)
	return p
}

func TestLoadExpandsPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("TildeInCopyAndWrite", func(t *testing.T) {
		p := loadPlan(t, `
steps:
  - copy:
      from: bashrc
      to: ~/.bashrc
  - write:
      to: ~/.gitconfig
      content: "[user]"
`)
		assert.Equal(t, filepath.Join(home, ".bashrc"), p.Steps[0].Copy.To)
		assert.Equal(t, filepath.Join(home, ".gitconfig"), p.Steps[1].Write.To)
	})

	t.Run("EnvVarsInPaths", func(t *testing.T) {
		t.Setenv("DOTUP_TARGET", filepath.Join(home, "target"))
		p := loadPlan(t, `
steps:
  - clone:
      repo: https://github.com/junegunn/fzf.git
      to: $DOTUP_TARGET/fzf
`)
		assert.Equal(t, filepath.Join(home, "target", "fzf"), p.Steps[0].Clone.To)
	})

	t.Run("RelativePathsResolveAgainstPlanDir", func(t *testing.T) {
		p := loadPlan(t, `
steps:
  - copy:
      from: dotfiles/bashrc
      to: ~/.bashrc
`)
		planDir := filepath.Dir(p.Path())
		assert.Equal(t, filepath.Join(planDir, "dotfiles", "bashrc"), p.Steps[0].Copy.From)
	})

	t.Run("RunDirIsExpandedAndResolved", func(t *testing.T) {
		p := loadPlan(t, `
steps:
  - run: make install
    dir: ~/src/tool
  - run: ./setup.sh
    dir: scripts
`)
		assert.Equal(t, filepath.Join(home, "src", "tool"), p.Steps[0].Dir)
		planDir := filepath.Dir(p.Path())
		assert.Equal(t, filepath.Join(planDir, "scripts"), p.Steps[1].Dir)
	})

	t.Run("ArgvElementsAreExpandedButNotResolved", func(t *testing.T) {
		p := loadPlan(t, `
steps:
  - run: [ln, -s, ~/dotfiles/vimrc, ~/.vimrc]
`)
		want := []string{"ln", "-s", filepath.Join(home, "dotfiles", "vimrc"), filepath.Join(home, ".vimrc")}
		assert.Equal(t, want, p.Steps[0].Run.Argv)
	})

	t.Run("CommandLinesAreLeftToTheShell", func(t *testing.T) {
		p := loadPlan(t, `
steps:
  - run: echo $HOME && ls ~/bin
`)
		assert.Equal(t, "echo $HOME && ls ~/bin", p.Steps[0].Run.CommandLine)
	})

	t.Run("WriteContentIsNeverExpanded", func(t *testing.T) {
		p := loadPlan(t, `
steps:
  - write:
      to: ~/.profile
      content: "export PATH=$HOME/bin:$PATH"
`)
		assert.Equal(t, "export PATH=$HOME/bin:$PATH", p.Steps[0].Write.Content)
	})

	t.Run("CloneRepoIsNeverPathResolved", func(t *testing.T) {
		p := loadPlan(t, `
steps:
  - clone:
      repo: git@github.com:junegunn/fzf.git
      to: ~/.fzf
`)
		assert.Equal(t, "git@github.com:junegunn/fzf.git", p.Steps[0].Clone.Repo)
	})

	t.Run("TildeMidPathIsLeftAlone", func(t *testing.T) {
		p := loadPlan(t, `
steps:
  - write:
      to: /tmp/dotup~backup
      content: x
`)
		assert.Equal(t, "/tmp/dotup~backup", p.Steps[0].Write.To)
	})
}
