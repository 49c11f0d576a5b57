package domtest

import "github.com/dmitrymomot/clinicsite/pkg/dom"

// Document is an in-memory document with an html root and a body.
type Document struct {
	root      *Element
	body      *Element
	listeners listeners
}

var _ dom.Document = (*Document)(nil)

// NewDocument creates a document whose body holds children.
func NewDocument(children ...*Element) *Document {
	d := &Document{
		root:      NewElement("html"),
		body:      NewElement("body"),
		listeners: listeners{},
	}
	d.root.doc = d
	d.root.AppendChild(d.body)
	d.body.Append(children...)
	return d
}

func (d *Document) ByID(id string) dom.Element {
	var found *Element
	d.root.walk(func(n *Element) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return found
}

// Find is Query returning the concrete element, or nil.
func (d *Document) Find(selector string) *Element { return d.root.find(selector) }

// FindAll is QueryAll returning concrete elements.
func (d *Document) FindAll(selector string) []*Element { return d.root.findAll(selector) }

func (d *Document) Query(selector string) dom.Element    { return d.root.Query(selector) }
func (d *Document) QueryAll(selector string) []dom.Element { return d.root.QueryAll(selector) }

func (d *Document) Body() dom.Element { return d.body }

// BodyElement returns the concrete body element.
func (d *Document) BodyElement() *Element { return d.body }

func (d *Document) CreateElement(tag string) dom.Element { return NewElement(tag) }

func (d *Document) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return d.listeners.add(eventType, fn)
}
