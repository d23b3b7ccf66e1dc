package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpara/pkg/langdetect"
	"github.com/yaklabco/mdpara/pkg/paragraph"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang sh", "#!/bin/sh\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"shebang wins over heuristics", "#!/bin/bash\ndef foo():\n    pass", "bash"},
		{"go", "package main\n\nfunc main() {}", "go"},
		{"python", "def foo():\n    pass", "python"},
		{"python dunder", "if __name__ == '__main__':\n    run()", "python"},
		{"javascript", "const x = () => 42;\nconsole.log(x());", "javascript"},
		{"json", `{"key": "value", "n": 1}`, "json"},
		{"yaml", "key: value\nother: 123\nlist:\n  - a\n  - b", "yaml"},
		{"rust", "fn main() {\n    println!(\"hi\");\n}", "rust"},
		{"csharp", "Console.WriteLine(\"hi\");", "csharp"},
		{"sql", "SELECT * FROM users WHERE id = 1;", "sql"},
		{"lowercase sql", "select name from t", "sql"},
		{"html", "<html>\n<body></body>\n</html>", "html"},
		{"plain text", "just some words", langdetect.Text},
		{"blank", "  \n\t", langdetect.Text},
		{"empty", "", langdetect.Text},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, langdetect.Detect(testCase.code))
		})
	}
}

func TestRuns(t *testing.T) {
	t.Parallel()

	input := "intro\n\n    package main\n    func main() {}\n\ntext\n\n    SELECT 1;"
	group, err := paragraph.Parse(input)
	require.NoError(t, err)

	runs := langdetect.Runs(group)
	require.Len(t, runs, 2)

	assert.Equal(t, 1, runs[0].First)
	assert.Equal(t, 2, runs[0].Last)
	assert.Equal(t, 2, runs[0].Len())
	assert.Equal(t, "package main\nfunc main() {}", runs[0].Code)
	assert.Equal(t, "go", runs[0].Language)

	assert.Equal(t, 4, runs[1].First)
	assert.Equal(t, 1, runs[1].Len())
	assert.Equal(t, "sql", runs[1].Language)
}

func TestRuns_NoCode(t *testing.T) {
	t.Parallel()

	group, err := paragraph.Parse("just\ntext")
	require.NoError(t, err)
	assert.Empty(t, langdetect.Runs(group))
}
