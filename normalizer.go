package govscrape

import "strings"

// EMISSINGCONTENT marks a document whose declared shape promised content
// (title plus body or parts) that the response did not carry.
const EMISSINGCONTENT = "missing_content"

// DefaultSkipTypes returns the document types excluded from normalization.
// Placeholder and redirect entries carry no content of their own; government
// and browse pages are deliberately out of the training set.
func DefaultSkipTypes() []string {
	return []string{DocTypeGovernment, DocTypeBrowsePage, DocTypePlaceholder, DocTypeRedirect}
}

// untitledPart names guide parts that arrive without a title.
const untitledPart = "Untitled Section"

// Normalizer maps raw content items into canonical documents. It dispatches
// on the declared document type and delegates HTML conversion to the
// injected Converter. Normalize is a pure function of its input: the same
// item always yields a byte-identical document.
type Normalizer struct {
	Converter Converter

	// SkipTypes lists document types that are never normalized.
	// Defaults to DefaultSkipTypes when nil.
	SkipTypes []string
}

// Normalize converts one content item into a document.
// It returns ESKIPPED for skip-listed document types, ENOCONTENT when the
// item has no extractable body, and EMISSINGCONTENT when required fields
// are absent. The caller always receives a classified outcome.
func (n *Normalizer) Normalize(item *ContentItem) (*Document, error) {
	if item == nil {
		return nil, Errorf(EINVALID, "content item required")
	}

	skipTypes := n.SkipTypes
	if skipTypes == nil {
		skipTypes = DefaultSkipTypes()
	}
	for _, t := range skipTypes {
		if item.DocumentType == t {
			return nil, Errorf(ESKIPPED, "document type %q is skip-listed", item.DocumentType)
		}
	}

	if item.Title == "" {
		return nil, Errorf(EMISSINGCONTENT, "document %q has no title", item.BasePath)
	}

	var content string
	var partTitles []string
	var err error

	switch {
	case item.DocumentType == DocTypeGuide || len(item.Details.Parts) > 0:
		content, partTitles, err = n.combineParts(item.Details.Parts)
	case item.Details.Body != "":
		content, err = n.Converter.Convert(item.Details.Body)
		content = strings.TrimSpace(content)
	default:
		return nil, Errorf(ENOCONTENT, "document type %q has no extractable body", item.DocumentType)
	}
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, Errorf(EMISSINGCONTENT, "document %q converted to empty content", item.BasePath)
	}

	locale := item.Locale
	if locale == "" {
		locale = "en"
	}

	return &Document{
		Title:            item.Title,
		BasePath:         item.BasePath,
		ContentID:        item.ContentID,
		Description:      item.Description,
		DocumentType:     item.DocumentType,
		SchemaName:       item.SchemaName,
		Locale:           locale,
		APIPath:          item.APIPath,
		WebURL:           item.WebURL,
		Content:          content,
		PartTitles:       partTitles,
		Links:            item.Links,
		PublicUpdatedAt:  item.PublicUpdatedAt,
		FirstPublishedAt: item.FirstPublishedAt,
		Withdrawn:        item.Withdrawn,
	}, nil
}

// combineParts converts each part body in order and joins them under
// second-level headings carrying the part titles. Parts without a body
// contribute neither content nor a recorded title.
func (n *Normalizer) combineParts(parts []ContentPart) (string, []string, error) {
	var sections []string
	var titles []string

	for _, part := range parts {
		if part.Body == "" {
			continue
		}

		body, err := n.Converter.Convert(part.Body)
		if err != nil {
			return "", nil, err
		}

		title := part.Title
		if title == "" {
			title = untitledPart
		}

		sections = append(sections, "## "+title+"\n\n"+strings.TrimSpace(body))
		titles = append(titles, title)
	}

	return strings.Join(sections, "\n\n"), titles, nil
}
