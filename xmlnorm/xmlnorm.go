// Package xmlnorm flattens XML documents into frames: one row per record
// element, one string column per dotted element or attribute path.
package xmlnorm

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/frame"
	"github.com/erraggy/coltools/series"
)

// Normalizer flattens XML into a frame.
type Normalizer struct {
	// RecordPath is a dot-separated path to the record elements, e.g.
	// "channel.item". Empty means the document root is the single record.
	RecordPath string
	// IncludeAttributes emits a column per XML attribute.
	IncludeAttributes bool
	// Explode turns repeated sibling tags into one row per repetition.
	// When false, a repeated sibling tag inside a record is an error.
	Explode bool
}

// New creates a Normalizer with default settings.
func New() *Normalizer {
	return &Normalizer{IncludeAttributes: true}
}

// Normalize is a convenience function that flattens data with default
// settings.
func Normalize(data []byte) (*frame.Frame, error) {
	return New().Normalize(data)
}

// element is a parsed XML element subtree.
type element struct {
	tag      string
	attrs    []xml.Attr
	text     string
	children []*element
}

// row is a flattened record with deterministic (document-order) columns.
type row struct {
	keys []string
	vals map[string]string
}

func newRow() *row {
	return &row{vals: map[string]string{}}
}

func (r *row) set(k, v string) {
	if _, ok := r.vals[k]; !ok {
		r.keys = append(r.keys, k)
	}
	r.vals[k] = v
}

func (r *row) get(k string) (string, bool) {
	v, ok := r.vals[k]
	return v, ok
}

func (r *row) clone() *row {
	out := &row{keys: make([]string, len(r.keys)), vals: make(map[string]string, len(r.vals))}
	copy(out.keys, r.keys)
	for k, v := range r.vals {
		out.vals[k] = v
	}
	return out
}

func (r *row) merge(src *row) {
	for _, k := range src.keys {
		r.set(k, src.vals[k])
	}
}

// Normalize flattens an XML document into a frame of string columns.
// Column order is first-seen document order across records; records
// missing a column get a null.
func (n *Normalizer) Normalize(data []byte) (*frame.Frame, error) {
	root, err := parse(data)
	if err != nil {
		return nil, err
	}

	records, err := n.selectRecords(root)
	if err != nil {
		return nil, err
	}

	var rows []*row
	for _, rec := range records {
		recRows, err := n.flatten(rec.node, rec.meta)
		if err != nil {
			return nil, err
		}
		rows = append(rows, recRows...)
	}
	return rowsToFrame(rows)
}

// parse builds an element tree from raw XML using the streaming decoder.
func parse(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &colerrors.InvalidInputError{Op: "xmlnorm.Normalize", Message: "malformed XML", Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{tag: stripNamespace(t.Name.Local), attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, &colerrors.InvalidInputError{Op: "xmlnorm.Normalize", Message: "multiple root elements"}
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	if root == nil {
		return nil, &colerrors.InvalidInputError{Op: "xmlnorm.Normalize", Message: "empty document"}
	}
	return root, nil
}

func stripNamespace(tag string) string {
	if i := strings.LastIndex(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// record pairs a record element with parent metadata columns that apply to
// every row the record produces.
type record struct {
	node *element
	meta *row
}

// selectRecords resolves RecordPath against the tree. An empty path makes
// the root the single record. The final path segment is matched anywhere
// under the resolved parent elements, mirroring a descendant search.
func (n *Normalizer) selectRecords(root *element) ([]record, error) {
	path := strings.Trim(n.RecordPath, ".")
	if path == "" {
		return []record{{node: root, meta: newRow()}}, nil
	}

	parts := strings.Split(path, ".")
	parentParts := parts[:len(parts)-1]
	recordTag := parts[len(parts)-1]

	parents := []*element{root}
	for _, part := range parentParts {
		var next []*element
		for _, p := range parents {
			// The first segment may name the root itself.
			if p == root && root.tag == part {
				next = append(next, p)
				continue
			}
			for _, child := range p.children {
				if child.tag == part {
					next = append(next, child)
				}
			}
		}
		parents = next
	}
	if len(parents) == 0 {
		return nil, &colerrors.InvalidInputError{
			Op:      "xmlnorm.Normalize",
			Value:   strings.Join(parentParts, "."),
			Message: "record path parent not found",
		}
	}

	var records []record
	for _, parent := range parents {
		meta := newRow()
		if n.IncludeAttributes {
			for _, attr := range parent.attrs {
				meta.set(parent.tag+"."+stripNamespace(attr.Name.Local), attr.Value)
			}
		}
		if text := strings.TrimSpace(parent.text); text != "" {
			meta.set(parent.tag+".text", text)
		}
		for _, node := range findAll(parent, recordTag) {
			records = append(records, record{node: node, meta: meta})
		}
	}
	if len(records) == 0 {
		return nil, &colerrors.InvalidInputError{
			Op:      "xmlnorm.Normalize",
			Value:   recordTag,
			Message: "no record elements found",
		}
	}
	return records, nil
}

// findAll returns every descendant of parent with the given tag, in
// document order.
func findAll(parent *element, tag string) []*element {
	var out []*element
	for _, child := range parent.children {
		if child.tag == tag {
			out = append(out, child)
		}
		out = append(out, findAll(child, tag)...)
	}
	return out
}

// flatten turns one record element into one or more rows. Without Explode
// a record yields exactly one row; with Explode, each repeated sibling
// group multiplies the rows, one per repetition.
func (n *Normalizer) flatten(rec *element, meta *row) ([]*row, error) {
	base, groups, err := n.flattenElement(rec, "")
	if err != nil {
		return nil, err
	}

	first := meta.clone()
	first.merge(base)
	rows := []*row{first}

	for _, group := range groups {
		var next []*row
		for _, sibling := range group.siblings {
			flat, nested, err := n.flattenElement(sibling, group.prefix)
			if err != nil {
				return nil, err
			}
			if len(nested) > 0 {
				return nil, &colerrors.InvalidInputError{
					Op:      "xmlnorm.Normalize",
					Value:   nested[0].tag,
					Message: "nested repeated tags are not supported",
				}
			}
			for _, r := range rows {
				merged := r.clone()
				merged.merge(flat)
				next = append(next, merged)
			}
		}
		rows = next
	}
	return rows, nil
}

// siblingGroup is a repeated tag under a common parent, kept aside for
// explosion.
type siblingGroup struct {
	tag      string
	prefix   string
	siblings []*element
}

// flattenElement flattens el into dotted-path columns. Repeated sibling
// tags are returned as groups when Explode is set, and are an error
// otherwise.
func (n *Normalizer) flattenElement(el *element, parentPath string) (*row, []siblingGroup, error) {
	prefix := el.tag
	if parentPath != "" {
		prefix = parentPath + "." + el.tag
	}

	out := newRow()
	if n.IncludeAttributes {
		for _, attr := range el.attrs {
			out.set(prefix+"."+stripNamespace(attr.Name.Local), attr.Value)
		}
	}
	if text := strings.TrimSpace(el.text); text != "" && len(el.children) == 0 {
		out.set(prefix+".text", text)
	}

	byTag := map[string][]*element{}
	var tagOrder []string
	for _, child := range el.children {
		if _, seen := byTag[child.tag]; !seen {
			tagOrder = append(tagOrder, child.tag)
		}
		byTag[child.tag] = append(byTag[child.tag], child)
	}

	var groups []siblingGroup
	for _, tag := range tagOrder {
		siblings := byTag[tag]
		if len(siblings) == 1 {
			flat, nested, err := n.flattenElement(siblings[0], prefix)
			if err != nil {
				return nil, nil, err
			}
			out.merge(flat)
			groups = append(groups, nested...)
			continue
		}
		if !n.Explode {
			return nil, nil, &colerrors.InvalidInputError{
				Op:      "xmlnorm.Normalize",
				Value:   tag,
				Message: "repeated sibling tag requires Explode",
			}
		}
		groups = append(groups, siblingGroup{tag: tag, prefix: prefix, siblings: siblings})
	}
	return out, groups, nil
}

// rowsToFrame assembles rows into string columns in first-seen key order.
func rowsToFrame(rows []*row) (*frame.Frame, error) {
	var order []string
	seen := map[string]bool{}
	for _, r := range rows {
		for _, k := range r.keys {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}

	cols := make([]*series.Series, 0, len(order))
	for _, key := range order {
		vals := make([]string, len(rows))
		null := make([]bool, len(rows))
		for i, r := range rows {
			v, ok := r.get(key)
			if !ok {
				null[i] = true
				continue
			}
			vals[i] = v
		}
		col, err := series.NewStringNullable(key, vals, null)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return frame.New(cols...)
}
