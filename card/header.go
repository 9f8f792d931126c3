package card

// Header is an HTTP header sent with an HTTP action. It is shared by the
// Adaptive Card Outlook extensions and MessageCard actions.
type Header struct {
	data *Data
}

// NewHeader returns a header. value is normally a string or an integer.
func NewHeader(name string, value any) *Header {
	d := NewData()
	d.Set("name", name)
	d.Set("value", value)
	return &Header{data: d}
}

func (h *Header) AsData() *Data { return h.data.Clone() }
