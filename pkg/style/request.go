package style

// Request carries the layout and spacing props of a box. Every field is optional.
type Request struct {
	FlexBox        bool   `yaml:"flexBox,omitempty" json:"flexBox,omitempty"`
	Direction      string `yaml:"direction,omitempty" json:"direction,omitempty" validate:"omitempty,oneof=row column row-reverse column-reverse"`
	JustifyContent string `yaml:"justifyContent,omitempty" json:"justifyContent,omitempty" validate:"omitempty,oneof=flex-start flex-end center space-between space-around"`
	AlignItems     string `yaml:"alignItems,omitempty" json:"alignItems,omitempty" validate:"omitempty,oneof=stretch flex-start flex-end center baseline"`

	Width    Length `yaml:"width,omitempty" json:"-"`
	Height   Length `yaml:"height,omitempty" json:"-"`
	Padding  Length `yaml:"padding,omitempty" json:"-"`
	PaddingX Length `yaml:"paddingX,omitempty" json:"-"`
	PaddingY Length `yaml:"paddingY,omitempty" json:"-"`
}

type namedLength struct {
	field   string
	value   Length
	spacing bool
}

func (r Request) lengths() []namedLength {
	return []namedLength{
		{field: "width", value: r.Width},
		{field: "height", value: r.Height},
		{field: "paddingX", value: r.PaddingX, spacing: true},
		{field: "paddingY", value: r.PaddingY, spacing: true},
		{field: "padding", value: r.Padding, spacing: true},
	}
}
