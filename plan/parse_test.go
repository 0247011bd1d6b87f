package plan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotupsh/dotup-cli/plan"
)

func TestParse(t *testing.T) {
	t.Run("ParsesEveryStepKind", func(t *testing.T) {
		doc := `
name: workstation
description: fresh machine setup
steps:
  - name: ask first
    confirm: "Set up this machine?"
  - name: install ripgrep
    run: brew install ripgrep
  - name: bashrc
    copy:
      from: bashrc
      to: ~/.bashrc
  - name: fzf
    clone:
      repo: https://github.com/junegunn/fzf.git
      to: ~/.fzf
  - name: gitconfig
    write:
      to: ~/.gitconfig
      content: |
        [user]
          name = Test
      mode: "0600"
`
		p, err := plan.Parse([]byte(doc))
		require.NoError(t, err)

		assert.Equal(t, "workstation", p.Name)
		assert.Equal(t, "fresh machine setup", p.Description)
		require.Len(t, p.Steps, 5)

		kinds := []plan.Kind{plan.KindConfirm, plan.KindRun, plan.KindCopy, plan.KindClone, plan.KindWrite}
		for i, want := range kinds {
			assert.Equalf(t, want, p.Steps[i].Kind, "step %d", i+1)
		}

		assert.Equal(t, "Set up this machine?", p.Steps[0].Confirm)
		assert.Equal(t, "brew install ripgrep", p.Steps[1].Run.CommandLine)
		assert.Equal(t, "bashrc", p.Steps[2].Copy.From)
		assert.Equal(t, "https://github.com/junegunn/fzf.git", p.Steps[3].Clone.Repo)
		assert.Equal(t, "0600", p.Steps[4].Write.Mode)
	})

	t.Run("RunAcceptsArgvList", func(t *testing.T) {
		doc := `
steps:
  - run: [git, config, --global, core.editor, vim]
`
		p, err := plan.Parse([]byte(doc))
		require.NoError(t, err)
		require.Len(t, p.Steps, 1)
		assert.Empty(t, p.Steps[0].Run.CommandLine)
		assert.Equal(t, []string{"git", "config", "--global", "core.editor", "vim"}, p.Steps[0].Run.Argv)
	})

	t.Run("RunStepOptions", func(t *testing.T) {
		doc := `
steps:
  - name: build
    run: make install
    dir: ~/src/tool
    interactive: true
`
		p, err := plan.Parse([]byte(doc))
		require.NoError(t, err)
		step := p.Steps[0]
		assert.Equal(t, "~/src/tool", step.Dir)
		assert.True(t, step.Interactive)
	})

	t.Run("EmptyConfirmGetsDefaultPrompt", func(t *testing.T) {
		doc := `
steps:
  - confirm: ""
`
		p, err := plan.Parse([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, plan.DefaultConfirmPrompt, p.Steps[0].Confirm)
	})

	t.Run("RejectsInvalidDocuments", func(t *testing.T) {
		tests := []struct {
			name    string
			doc     string
			wantErr string
		}{
			{
				name:    "NoSteps",
				doc:     "name: empty\n",
				wantErr: "no steps",
			},
			{
				name:    "EmptyStepList",
				doc:     "steps: []\n",
				wantErr: "no steps",
			},
			{
				name:    "StepWithoutAction",
				doc:     "steps:\n  - name: mystery\n",
				wantErr: "has no action",
			},
			{
				name: "StepWithTwoActions",
				doc: `steps:
  - name: both
    run: echo hi
    copy:
      from: a
      to: b
`,
				wantErr: "exactly one action",
			},
			{
				name:    "UnknownStepField",
				doc:     "steps:\n  - run: echo hi\n    shell: zsh\n",
				wantErr: `unknown step field "shell"`,
			},
			{
				name:    "UnknownTopLevelField",
				doc:     "title: nope\nsteps:\n  - run: echo hi\n",
				wantErr: "field title not found",
			},
			{
				name:    "StepIsNotAMapping",
				doc:     "steps:\n  - just a string\n",
				wantErr: "must be a mapping",
			},
			{
				name:    "RunIsAMapping",
				doc:     "steps:\n  - run:\n      cmd: echo hi\n",
				wantErr: "command string or an argv list",
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := plan.Parse([]byte(tc.doc))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			})
		}
	})

	t.Run("ErrorsCarryLineNumbers", func(t *testing.T) {
		doc := `steps:
  - run: echo ok
  - name: broken
`
		_, err := plan.Parse([]byte(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
	})
}

func TestLoad(t *testing.T) {
	writePlan := func(t *testing.T, dir, doc string) string {
		t.Helper()
		path := filepath.Join(dir, plan.DefaultFileName)
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
		return path
	}

	t.Run("RecordsAbsolutePlanPath", func(t *testing.T) {
		dir := t.TempDir()
		path := writePlan(t, dir, "steps:\n  - run: echo hi\n")

		p, err := plan.Load(path)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(p.Path()))
		assert.Equal(t, plan.DefaultFileName, filepath.Base(p.Path()))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := plan.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read plan file")
	})

	t.Run("ParseErrorsNameTheFile", func(t *testing.T) {
		dir := t.TempDir()
		path := writePlan(t, dir, "steps: []\n")

		_, err := plan.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}
