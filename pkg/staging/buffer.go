// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package staging holds the working copy of a file while its matches are decided.
//
// A Buffer is a sequence of immutable segments. Live segments hold text that has not
// been decided yet and is visible to matchers. Placeholder segments stand in for a
// decided span and carry the index of its entry in the pending list. Nothing is ever
// spliced into the text itself, so no content can be mistaken for a placeholder.
package staging

import (
	"sort"
	"strings"

	"github.com/walteh/infrep/pkg/text"
)

const live = -1

type segment struct {
	text string // live text; empty for placeholders
	seq  int    // pending index, or live
}

// Replacement is the outcome recorded for one decided span
type Replacement struct {
	Original string
	Chosen   string
}

// Changed reports whether committing this entry alters the file
func (r Replacement) Changed() bool {
	return r.Original != r.Chosen
}

// Buffer is the staged content of one file
type Buffer struct {
	original string
	segments []segment
	pending  []Replacement
}

// New stages content. The content is treated as opaque bytes.
func New(content string) *Buffer {
	b := &Buffer{original: content}
	if content != "" {
		b.segments = []segment{{text: content, seq: live}}
	}
	return b
}

// Span locates a match inside the live text of a Buffer
type Span struct {
	seg   int
	start int
	end   int

	// Match carries offsets into the original content
	Match text.Match
	// Line and EndLine are 1-based line numbers in the original content
	Line    int
	EndLine int
}

// Next returns the leftmost match of m in the live text. Decided spans are never searched
// and no match straddles one. A text.ContextMatcher sees the whole file as it currently
// reads, so anchors and word boundaries next to a decided span behave as they would in
// the rendered text.
func (b *Buffer) Next(m text.Matcher) (Span, bool) {
	if cm, ok := m.(text.ContextMatcher); ok {
		return b.nextInView(cm)
	}

	offset := 0
	for i, seg := range b.segments {
		if seg.seq != live {
			offset += len(b.pending[seg.seq].Original)
			continue
		}
		if loc := m.Find(seg.text); loc != nil {
			return b.span(i, offset, loc, m.Names()), true
		}
		offset += len(seg.text)
	}
	return Span{}, false
}

// position is where a segment starts in the rendered text and in the original content
type position struct {
	view int
	orig int
}

func (b *Buffer) layout() (string, []position) {
	var view strings.Builder
	positions := make([]position, len(b.segments))
	orig := 0
	for i, seg := range b.segments {
		positions[i] = position{view: view.Len(), orig: orig}
		view.WriteString(b.segmentText(seg))
		if seg.seq == live {
			orig += len(seg.text)
		} else {
			orig += len(b.pending[seg.seq].Original)
		}
	}
	return view.String(), positions
}

// nextInView searches the rendered text and keeps the leftmost match that lies inside a
// single live segment. A match that overlaps a decided span is discarded.
func (b *Buffer) nextInView(m text.ContextMatcher) (Span, bool) {
	view, positions := b.layout()
	for _, loc := range m.FindAll(view) {
		i := sort.Search(len(positions), func(j int) bool { return positions[j].view > loc[0] }) - 1
		if i < 0 {
			continue
		}
		seg := b.segments[i]
		start := positions[i].view
		if seg.seq != live || loc[1] > start+len(seg.text) {
			continue
		}

		rel := make([]int, len(loc))
		for k, v := range loc {
			rel[k] = v
			if v >= 0 {
				rel[k] = v - start
			}
		}
		return b.span(i, positions[i].orig, rel, m.Names()), true
	}
	return Span{}, false
}

// span builds the Span for loc within live segment i, which starts at offset in the
// original content
func (b *Buffer) span(i, offset int, loc []int, names []string) Span {
	match := text.NewMatch(b.segments[i].text, loc, names)
	match.Start += offset
	match.End += offset
	match.Seq = len(b.pending)

	line := strings.Count(b.original[:match.Start], "\n") + 1
	return Span{
		seg:     i,
		start:   loc[0],
		end:     loc[1],
		Match:   match,
		Line:    line,
		EndLine: line + strings.Count(match.Text, "\n"),
	}
}

// Decide records chosen as the final text for span and neutralizes it. It returns the
// sequence number of the new pending entry. span must come from the latest call to Next.
func (b *Buffer) Decide(span Span, chosen string) int {
	seg := b.segments[span.seg]
	seq := len(b.pending)
	b.pending = append(b.pending, Replacement{
		Original: seg.text[span.start:span.end],
		Chosen:   chosen,
	})

	parts := make([]segment, 0, 3)
	if span.start > 0 {
		parts = append(parts, segment{text: seg.text[:span.start], seq: live})
	}
	parts = append(parts, segment{seq: seq})
	if span.end < len(seg.text) {
		parts = append(parts, segment{text: seg.text[span.end:], seq: live})
	}

	segments := make([]segment, 0, len(b.segments)+len(parts)-1)
	segments = append(segments, b.segments[:span.seg]...)
	segments = append(segments, parts...)
	segments = append(segments, b.segments[span.seg+1:]...)
	b.segments = segments

	return seq
}

// Lines returns the full line(s) around span as they currently read, with decided spans
// shown as their chosen text, followed by the same lines with replacement in place of the
// match.
func (b *Buffer) Lines(span Span, replacement string) (before, after string) {
	var prefix, suffix strings.Builder
	for i, seg := range b.segments {
		switch {
		case i < span.seg:
			prefix.WriteString(b.segmentText(seg))
		case i > span.seg:
			suffix.WriteString(b.segmentText(seg))
		default:
			prefix.WriteString(seg.text[:span.start])
			suffix.WriteString(seg.text[span.end:])
		}
	}

	head := prefix.String()
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		head = head[i+1:]
	}
	tail := suffix.String()
	if i := strings.IndexByte(tail, '\n'); i >= 0 {
		tail = tail[:i]
	}

	return head + span.Match.Text + tail, head + replacement + tail
}

func (b *Buffer) segmentText(seg segment) string {
	if seg.seq == live {
		return seg.text
	}
	return b.pending[seg.seq].Chosen
}

// Pending returns the recorded outcomes in sequence order
func (b *Buffer) Pending() []Replacement {
	return b.pending
}

// Accepted returns the number of pending entries that change the file
func (b *Buffer) Accepted() int {
	n := 0
	for _, r := range b.pending {
		if r.Changed() {
			n++
		}
	}
	return n
}

// Original returns the content the buffer was created with
func (b *Buffer) Original() string {
	return b.original
}

// Render substitutes every placeholder with its chosen text.
func (b *Buffer) Render() string {
	var out strings.Builder
	out.Grow(len(b.original))
	for _, seg := range b.segments {
		out.WriteString(b.segmentText(seg))
	}
	return out.String()
}
