package notion

// Property names in the assignments data source.
const (
	PropName     = "Name"
	PropDate     = "Date"
	PropClass    = "Class"
	PropRef      = "Ref"
	PropStatus   = "Status"
	PropCanvasID = "Canvas ID"
)

type TextContent struct {
	Content string `json:"content"`
}

// RichText is one text run. PlainText is filled by Notion on reads.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

type NamedOption struct {
	Name string `json:"name"`
}

// PropertyValue covers the property types this sync reads or writes.
type PropertyValue struct {
	Type     string       `json:"type,omitempty"`
	Title    []RichText   `json:"title,omitempty"`
	RichText []RichText   `json:"rich_text,omitempty"`
	Date     *DateValue   `json:"date,omitempty"`
	Select   *NamedOption `json:"select,omitempty"`
	Status   *NamedOption `json:"status,omitempty"`
	URL      *string      `json:"url,omitempty"`
}

type Page struct {
	Object     string                   `json:"object"`
	ID         string                   `json:"id"`
	URL        string                   `json:"url,omitempty"`
	Properties map[string]PropertyValue `json:"properties"`
}

type Parent struct {
	DataSourceID string `json:"data_source_id"`
}

type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

type QueryRequest struct {
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type QueryResponse struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

func Text(s string) []RichText {
	return []RichText{{Text: &TextContent{Content: s}}}
}

// FirstPlainText returns the plain text of the first rich-text run of
// property name, and false when the property is missing or empty.
func (p Page) FirstPlainText(name string) (string, bool) {
	prop, ok := p.Properties[name]
	if !ok || len(prop.RichText) == 0 {
		return "", false
	}
	return prop.RichText[0].PlainText, true
}
