package plan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotupsh/dotup-cli/plan"
)

func TestProblems(t *testing.T) {
	t.Run("CleanPlanHasNone", func(t *testing.T) {
		p, err := plan.Parse([]byte(`
steps:
  - name: ask
    confirm: "Ready?"
  - name: install
    run: brew install ripgrep jq
  - copy:
      from: bashrc
      to: ~/.bashrc
  - clone:
      repo: https://github.com/junegunn/fzf.git
      to: ~/.fzf
  - write:
      to: ~/.gitconfig
      content: "[user]"
      mode: "0600"
`))
		require.NoError(t, err)
		assert.Empty(t, p.Problems())
	})

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "DuplicateStepNames",
			doc: `
steps:
  - name: setup
    run: echo one
  - name: setup
    run: echo two
`,
			want: "duplicate step name",
		},
		{
			name: "DirOnNonRunStep",
			doc: `
steps:
  - copy:
      from: a
      to: b
    dir: /tmp
`,
			want: "dir is only valid on run steps",
		},
		{
			name: "InteractiveOnNonRunStep",
			doc: `
steps:
  - confirm: "Ready?"
    interactive: true
`,
			want: "interactive is only valid on run steps",
		},
		{
			name: "EmptyRunCommand",
			doc: `
steps:
  - run: ""
`,
			want: "run step has no command",
		},
		{
			name: "EmptyArgvProgram",
			doc: `
steps:
  - run: ["", --flag]
`,
			want: "argv[0] must name a program",
		},
		{
			name: "BrokenShellSyntax",
			doc: `
steps:
  - run: "echo 'unterminated"
`,
			want: "shell syntax",
		},
		{
			name: "CopyMissingFrom",
			doc: `
steps:
  - copy:
      to: ~/.bashrc
`,
			want: "copy step is missing from",
		},
		{
			name: "CopyMissingTo",
			doc: `
steps:
  - copy:
      from: bashrc
`,
			want: "copy step is missing to",
		},
		{
			name: "CloneMissingRepo",
			doc: `
steps:
  - clone:
      to: ~/.fzf
`,
			want: "clone step is missing repo",
		},
		{
			name: "CloneMissingTo",
			doc: `
steps:
  - clone:
      repo: https://github.com/junegunn/fzf.git
`,
			want: "clone step is missing to",
		},
		{
			name: "WriteMissingTo",
			doc: `
steps:
  - write:
      content: hello
`,
			want: "write step is missing to",
		},
		{
			name: "BadFileMode",
			doc: `
steps:
  - write:
      to: ~/.gitconfig
      content: x
      mode: "rw-r--r--"
`,
			want: "invalid file mode",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := plan.Parse([]byte(tc.doc))
			require.NoError(t, err)

			problems := p.Problems()
			require.NotEmpty(t, problems)

			found := false
			for _, prob := range problems {
				if strings.Contains(prob.Message, tc.want) {
					found = true
				}
			}
			assert.Truef(t, found, "no problem mentions %q in %v", tc.want, problems)
		})
	}

	t.Run("ProblemStringNamesTheStep", func(t *testing.T) {
		p, err := plan.Parse([]byte(`
steps:
  - name: fetch
    clone:
      to: ~/.fzf
`))
		require.NoError(t, err)

		problems := p.Problems()
		require.Len(t, problems, 1)
		assert.Equal(t, 0, problems[0].StepIndex)
		assert.Equal(t, "fetch", problems[0].StepName)
		assert.Equal(t, "step 1 (fetch): clone step is missing repo", problems[0].String())
	})
}
