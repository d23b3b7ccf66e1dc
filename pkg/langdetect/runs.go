package langdetect

import (
	"strings"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/paragraph"
)

// Run is a block of consecutive Code paragraphs.
type Run struct {
	// First and Last are paragraph indices, inclusive.
	First int `json:"first"`
	Last  int `json:"last"`

	// Code is the paragraphs' content joined with newlines.
	Code string `json:"-"`

	// Language is the detected language, or Text.
	Language string `json:"language"`
}

// Len returns the number of paragraphs in the run.
func (r Run) Len() int {
	return r.Last - r.First + 1
}

// Runs groups the consecutive Code paragraphs of group and labels each run.
// Lines inside one code block are emitted as separate paragraphs, so this is
// the unit a reader thinks of as "a code block".
func Runs(group *paragraph.Group) []Run {
	var (
		runs []Run
		cur  *Run
		code []string
	)

	finish := func() {
		if cur == nil {
			return
		}
		cur.Code = strings.Join(code, "\n")
		cur.Language = Detect(cur.Code)
		runs = append(runs, *cur)
		cur, code = nil, nil
	}

	for i, p := range group.All() {
		if p.Kind != block.Code {
			finish()
			continue
		}
		if cur == nil {
			cur = &Run{First: i}
		}
		cur.Last = i
		code = append(code, p.Text())
	}
	finish()

	return runs
}
