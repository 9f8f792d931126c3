package adaptivecard

import (
	"github.com/utsurius/actionable-messages/card"
)

// ActionSetOptions configures an ActionSet.
type ActionSetOptions struct {
	ElementOptions
	HorizontalAlignment HorizontalAlignment
}

// ActionSet displays a set of actions inside the body.
type ActionSet struct {
	elementNode
}

// NewActionSet returns an ActionSet holding a snapshot of actions.
func NewActionSet(opts *ActionSetOptions, actions ...Action) (*ActionSet, error) {
	if opts == nil {
		opts = &ActionSetOptions{}
	}
	e := &ActionSet{elementNode: newElementNode("ActionSet")}
	if err := e.SetActions(actions...); err != nil {
		return nil, err
	}
	opts.ElementOptions.apply(e.data)
	setEnum(e.data, "horizontalAlignment", opts.HorizontalAlignment)
	return e, nil
}

func (e *ActionSet) SetActions(actions ...Action) error {
	list, err := card.Collect("actions", actions)
	if err != nil {
		return err
	}
	e.data.Set("actions", list)
	return nil
}

func (e *ActionSet) AddActions(actions ...Action) error {
	list, err := card.Collect("actions", actions)
	if err != nil {
		return err
	}
	e.data.Append("actions", list...)
	return nil
}

// ContainerOptions are shared by Container, Column and TableCell.
type ContainerOptions struct {
	ElementOptions
	SelectAction             Action
	Style                    Style
	VerticalContentAlignment VerticalAlignment
	Bleed                    *bool
	// MinHeight is a pixel value such as "80px".
	MinHeight string
	RTL       *bool
}

func (o *ContainerOptions) apply(d *card.Data) {
	if o == nil {
		return
	}
	o.ElementOptions.apply(d)
	setAction(d, "selectAction", o.SelectAction)
	setEnum(d, "style", o.Style)
	setEnum(d, "verticalContentAlignment", o.VerticalContentAlignment)
	setBool(d, "bleed", o.Bleed)
	setString(d, "minHeight", o.MinHeight)
	setBool(d, "rtl", o.RTL)
}

// containerNode holds the items and styling of Container, Column and
// TableCell.
type containerNode struct {
	baseNode
}

func newContainerNode(typ string, opts *ContainerOptions, items []Element) (containerNode, error) {
	c := containerNode{baseNode: newBaseNode(typ)}
	if len(items) > 0 || typ != "Column" {
		if err := c.SetItems(items...); err != nil {
			return containerNode{}, err
		}
	}
	opts.apply(c.data)
	return c, nil
}

func (c *containerNode) SetItems(items ...Element) error {
	list, err := card.Collect("items", items)
	if err != nil {
		return err
	}
	c.data.Set("items", list)
	return nil
}

func (c *containerNode) AddItems(items ...Element) error {
	list, err := card.Collect("items", items)
	if err != nil {
		return err
	}
	c.data.Append("items", list...)
	return nil
}

func (c *containerNode) SetSelectAction(a Action) error {
	return snapshotAction(c.data, "selectAction", a)
}

func (c *containerNode) SetStyle(s Style)      { c.data.Set("style", string(s)) }
func (c *containerNode) SetBleed(v bool)       { c.data.Set("bleed", v) }
func (c *containerNode) SetMinHeight(h string) { c.data.Set("minHeight", h) }
func (c *containerNode) SetRTL(v bool)         { c.data.Set("rtl", v) }

func (c *containerNode) SetVerticalContentAlignment(a VerticalAlignment) {
	c.data.Set("verticalContentAlignment", string(a))
}

// SetBackgroundImage accepts an image URL or a *BackgroundImage.
func (c *containerNode) SetBackgroundImage(image any) error {
	v, err := resolveBackgroundImage(image)
	if err != nil {
		return err
	}
	c.data.Set("backgroundImage", v)
	return nil
}

// Container groups items.
type Container struct {
	containerNode
}

// NewContainer returns a Container holding a snapshot of items.
func NewContainer(opts *ContainerOptions, items ...Element) (*Container, error) {
	c, err := newContainerNode("Container", opts, items)
	if err != nil {
		return nil, err
	}
	return &Container{containerNode: c}, nil
}

func (*Container) isElement() {}

// SetFallback accepts FallbackDrop or another Element.
func (c *Container) SetFallback(fallback any) error {
	v, err := resolveElementFallback(fallback)
	if err != nil {
		return err
	}
	c.data.Set("fallback", v)
	return nil
}

// Column is one column of a ColumnSet. It is not a body element.
type Column struct {
	containerNode
}

// NewColumn returns a Column. The items field is omitted when no items are given.
func NewColumn(opts *ContainerOptions, items ...Element) (*Column, error) {
	c, err := newContainerNode("Column", opts, items)
	if err != nil {
		return nil, err
	}
	return &Column{containerNode: c}, nil
}

// SetWidth accepts WidthAuto, WidthStretch, a pixel string such as "50px"
// or an integer weight.
func (c *Column) SetWidth(width any) error {
	v, err := resolveWidth(width)
	if err != nil {
		return err
	}
	c.data.Set("width", v)
	return nil
}

// SetFallback accepts FallbackDrop or another *Column.
func (c *Column) SetFallback(fallback any) error {
	switch f := fallback.(type) {
	case FallbackOption:
		if f == FallbackDrop {
			c.data.Set("fallback", string(f))
			return nil
		}
	case *Column:
		if f != nil {
			c.data.Set("fallback", f.AsData())
			return nil
		}
	}
	return card.Errorf(card.InvalidFallbackType, "invalid fallback type %T: want FallbackDrop or *Column", fallback)
}

// ColumnSetOptions configures a ColumnSet.
type ColumnSetOptions struct {
	ElementOptions
	SelectAction        Action
	Style               Style
	Bleed               *bool
	MinHeight           string
	HorizontalAlignment HorizontalAlignment
}

// ColumnSet lays out columns side by side.
type ColumnSet struct {
	elementNode
}

// NewColumnSet returns a ColumnSet of the given columns.
func NewColumnSet(opts *ColumnSetOptions, columns ...*Column) (*ColumnSet, error) {
	if opts == nil {
		opts = &ColumnSetOptions{}
	}
	e := &ColumnSet{elementNode: newElementNode("ColumnSet")}
	if err := e.SetColumns(columns...); err != nil {
		return nil, err
	}
	opts.ElementOptions.apply(e.data)
	setAction(e.data, "selectAction", opts.SelectAction)
	setEnum(e.data, "style", opts.Style)
	setBool(e.data, "bleed", opts.Bleed)
	setString(e.data, "minHeight", opts.MinHeight)
	setEnum(e.data, "horizontalAlignment", opts.HorizontalAlignment)
	return e, nil
}

func (e *ColumnSet) SetColumns(columns ...*Column) error {
	list, err := card.Collect("columns", columns)
	if err != nil {
		return err
	}
	e.data.Set("columns", list)
	return nil
}

func (e *ColumnSet) AddColumns(columns ...*Column) error {
	list, err := card.Collect("columns", columns)
	if err != nil {
		return err
	}
	e.data.Append("columns", list...)
	return nil
}

func (e *ColumnSet) SetSelectAction(a Action) error {
	return snapshotAction(e.data, "selectAction", a)
}

func (e *ColumnSet) SetStyle(s Style)      { e.data.Set("style", string(s)) }
func (e *ColumnSet) SetBleed(v bool)       { e.data.Set("bleed", v) }
func (e *ColumnSet) SetMinHeight(h string) { e.data.Set("minHeight", h) }

func (e *ColumnSet) SetHorizontalAlignment(a HorizontalAlignment) {
	e.data.Set("horizontalAlignment", string(a))
}

// Fact is one title/value pair of a FactSet.
type Fact struct {
	node
}

// NewFact returns a title/value pair for a FactSet.
func NewFact(title, value string) *Fact {
	f := &Fact{node: newNode("")}
	f.data.Set("title", title)
	f.data.Set("value", value)
	return f
}

// FactSet displays facts as a two-column table.
type FactSet struct {
	elementNode
}

// NewFactSet returns a FactSet of the given facts.
func NewFactSet(opts *ElementOptions, facts ...*Fact) (*FactSet, error) {
	e := &FactSet{elementNode: newElementNode("FactSet")}
	if err := e.SetFacts(facts...); err != nil {
		return nil, err
	}
	if opts != nil {
		opts.apply(e.data)
	}
	return e, nil
}

func (e *FactSet) SetFacts(facts ...*Fact) error {
	list, err := card.Collect("facts", facts)
	if err != nil {
		return err
	}
	e.data.Set("facts", list)
	return nil
}

func (e *FactSet) AddFacts(facts ...*Fact) error {
	list, err := card.Collect("facts", facts)
	if err != nil {
		return err
	}
	e.data.Append("facts", list...)
	return nil
}

// ImageSetOptions configures an ImageSet.
type ImageSetOptions struct {
	ElementOptions
	ImageSize ImageSize
}

// ImageSet displays images as a gallery.
type ImageSet struct {
	elementNode
}

// NewImageSet returns an ImageSet of the given images.
func NewImageSet(opts *ImageSetOptions, images ...*Image) (*ImageSet, error) {
	if opts == nil {
		opts = &ImageSetOptions{}
	}
	e := &ImageSet{elementNode: newElementNode("ImageSet")}
	if err := e.SetImages(images...); err != nil {
		return nil, err
	}
	opts.ElementOptions.apply(e.data)
	setEnum(e.data, "imageSize", opts.ImageSize)
	return e, nil
}

func (e *ImageSet) SetImages(images ...*Image) error {
	list, err := card.Collect("images", images)
	if err != nil {
		return err
	}
	e.data.Set("images", list)
	return nil
}

func (e *ImageSet) AddImages(images ...*Image) error {
	list, err := card.Collect("images", images)
	if err != nil {
		return err
	}
	e.data.Append("images", list...)
	return nil
}

func (e *ImageSet) SetImageSize(s ImageSize) { e.data.Set("imageSize", string(s)) }

// TableCell is one cell of a TableRow.
type TableCell struct {
	containerNode
}

// NewTableCell returns a TableCell holding a snapshot of items.
func NewTableCell(opts *ContainerOptions, items ...Element) (*TableCell, error) {
	c, err := newContainerNode("TableCell", opts, items)
	if err != nil {
		return nil, err
	}
	return &TableCell{containerNode: c}, nil
}

// TableRow is one row of a Table.
type TableRow struct {
	node
}

// NewTableRow returns a TableRow of cells. An empty style is omitted.
func NewTableRow(style Style, cells ...*TableCell) (*TableRow, error) {
	r := &TableRow{node: newNode("TableRow")}
	if err := r.SetCells(cells...); err != nil {
		return nil, err
	}
	setEnum(r.data, "style", style)
	return r, nil
}

func (r *TableRow) SetCells(cells ...*TableCell) error {
	list, err := card.Collect("cells", cells)
	if err != nil {
		return err
	}
	r.data.Set("cells", list)
	return nil
}

func (r *TableRow) AddCells(cells ...*TableCell) error {
	list, err := card.Collect("cells", cells)
	if err != nil {
		return err
	}
	r.data.Append("cells", list...)
	return nil
}

func (r *TableRow) SetStyle(s Style) { r.data.Set("style", string(s)) }

// TableOptions configures a Table.
type TableOptions struct {
	ElementOptions
	// Columns are raw column definitions such as {"width": 1}.
	Columns                        []map[string]any
	FirstRowAsHeader               *bool
	ShowGridLines                  *bool
	GridStyle                      Style
	HorizontalCellContentAlignment HorizontalAlignment
	VerticalCellContentAlignment   VerticalAlignment
}

// Table displays rows of cells.
type Table struct {
	elementNode
}

// NewTable returns a Table of the given rows.
func NewTable(opts *TableOptions, rows ...*TableRow) (*Table, error) {
	if opts == nil {
		opts = &TableOptions{}
	}
	e := &Table{elementNode: newElementNode("Table")}
	if len(opts.Columns) > 0 {
		e.SetColumns(opts.Columns...)
	}
	if err := e.SetRows(rows...); err != nil {
		return nil, err
	}
	opts.ElementOptions.apply(e.data)
	setBool(e.data, "firstRowAsHeader", opts.FirstRowAsHeader)
	setBool(e.data, "showGridLines", opts.ShowGridLines)
	setEnum(e.data, "gridStyle", opts.GridStyle)
	setEnum(e.data, "horizontalCellContentAlignment", opts.HorizontalCellContentAlignment)
	setEnum(e.data, "verticalCellContentAlignment", opts.VerticalCellContentAlignment)
	return e, nil
}

// SetColumns stores copies of the raw column definitions.
func (e *Table) SetColumns(columns ...map[string]any) {
	list := make([]any, 0, len(columns))
	for _, c := range columns {
		list = append(list, cloneMap(c))
	}
	e.data.Set("columns", list)
}

func (e *Table) SetRows(rows ...*TableRow) error {
	list, err := card.Collect("rows", rows)
	if err != nil {
		return err
	}
	e.data.Set("rows", list)
	return nil
}

func (e *Table) AddRows(rows ...*TableRow) error {
	list, err := card.Collect("rows", rows)
	if err != nil {
		return err
	}
	e.data.Append("rows", list...)
	return nil
}

func (e *Table) SetFirstRowAsHeader(v bool) { e.data.Set("firstRowAsHeader", v) }
func (e *Table) SetShowGridLines(v bool)    { e.data.Set("showGridLines", v) }
func (e *Table) SetGridStyle(s Style)       { e.data.Set("gridStyle", string(s)) }

func (e *Table) SetHorizontalCellContentAlignment(a HorizontalAlignment) {
	e.data.Set("horizontalCellContentAlignment", string(a))
}

func (e *Table) SetVerticalCellContentAlignment(a VerticalAlignment) {
	e.data.Set("verticalCellContentAlignment", string(a))
}
