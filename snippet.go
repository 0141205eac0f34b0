package govscrape

import "strings"

// maxParagraphsPerSnippet groups paragraph blocks when a document has no
// headings to cut at.
const maxParagraphsPerSnippet = 4

// SplitSnippets partitions markdown content into contiguous snippets.
// Cuts happen at heading lines outside code fences; documents without
// headings are cut at paragraph boundaries instead, grouping a few
// paragraphs per snippet. The cuts are index-based, so concatenating the
// returned snippets reproduces the content byte for byte.
func SplitSnippets(content string) []string {
	if content == "" {
		return nil
	}

	cuts := headingCuts(content)
	if len(cuts) == 0 {
		cuts = paragraphCuts(content, maxParagraphsPerSnippet)
	}

	snippets := make([]string, 0, len(cuts)+1)
	prev := 0
	for _, cut := range cuts {
		snippets = append(snippets, content[prev:cut])
		prev = cut
	}
	snippets = append(snippets, content[prev:])
	return snippets
}

// headingCuts returns the byte offsets of markdown heading lines, skipping
// offset zero and anything inside a fenced code block.
func headingCuts(content string) []int {
	var cuts []int
	inFence := false
	offset := 0

	for _, line := range strings.SplitAfter(content, "\n") {
		trimmed := strings.TrimRight(line, "\n")
		if strings.HasPrefix(strings.TrimSpace(trimmed), "```") {
			inFence = !inFence
		} else if !inFence && offset > 0 && isHeading(trimmed) {
			cuts = append(cuts, offset)
		}
		offset += len(line)
	}

	return cuts
}

// paragraphCuts returns byte offsets of every nth paragraph start, where a
// paragraph starts at a non-blank line that follows a blank line.
func paragraphCuts(content string, groupSize int) []int {
	var cuts []int
	offset := 0
	prevBlank := false
	paragraphs := 0

	for _, line := range strings.SplitAfter(content, "\n") {
		blank := strings.TrimSpace(line) == ""
		if !blank && prevBlank && offset > 0 {
			paragraphs++
			if paragraphs%groupSize == 0 {
				cuts = append(cuts, offset)
			}
		}
		prevBlank = blank
		offset += len(line)
	}

	return cuts
}

// isHeading reports whether a line is a markdown ATX heading (H1-H6).
func isHeading(line string) bool {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	return i >= 1 && i <= 6 && i < len(line) && line[i] == ' '
}
