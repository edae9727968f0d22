package box

import (
	"github.com/alexisbeaulieu97/miever/pkg/style"
	"github.com/alexisbeaulieu97/miever/pkg/tokens"
)

// Story is a named example box tree used by the gallery.
type Story struct {
	Name        string
	Description string
	Root        Box
}

// Stories returns the built-in gallery in display order.
func Stories() []Story {
	return []Story{
		{
			Name:        "default",
			Description: "Sized box with raw padding and decorative inline styles.",
			Root: Box{
				Name: "default",
				Request: style.Request{
					Width:   style.Raw("200px"),
					Height:  style.Raw("100px"),
					Padding: style.Raw("16px"),
				},
				Style: NewInline(
					"border", "1px solid #ccc",
					"background", "#f9f9f9",
					"borderRadius", "8px",
					"boxShadow", "0 2px 5px rgba(0, 0, 0, 0.1)",
					"transition", "all 0.3s ease",
				),
				Text: "This is a Box",
			},
		},
		{
			Name:        "flexbox",
			Description: "Centered row of three coloured children.",
			Root: Box{
				Name: "flexbox",
				Request: style.Request{
					FlexBox:        true,
					Direction:      "row",
					JustifyContent: "center",
					AlignItems:     "center",
				},
				Style: NewInline(
					"width", "100%",
					"height", "200px",
					"padding", "16px",
					"background", "#f0f0f0",
					"border", "2px dashed #ddd",
					"borderRadius", "8px",
				),
				Children: []Box{
					flexChild("child-1", "#0CC0DF", "Child 1"),
					flexChild("child-2", "#12aa9c", "Child 2"),
					flexChild("child-3", "#20c997", "Child 3"),
				},
			},
		},
		{
			Name:        "padding",
			Description: "The same box at each spacing token.",
			Root: Box{
				Name:    "padding",
				Request: style.Request{FlexBox: true, Direction: "column"},
				Style:   NewInline("gap", "16px"),
				Children: []Box{
					paddedChild(tokens.ExtraSmall, "Padding XS"),
					paddedChild(tokens.Small, "Padding SM"),
					paddedChild(tokens.Large, "Padding LG"),
				},
			},
		},
		{
			Name:        "dynamic",
			Description: "Space-between row with fixed-size children.",
			Root: Box{
				Name: "dynamic",
				Request: style.Request{
					FlexBox:        true,
					Direction:      "row",
					JustifyContent: "space-between",
					AlignItems:     "center",
					Height:         style.Raw("150px"),
				},
				Style: NewInline(
					"background", "#e6f7ff",
					"border", "1px solid #91d5ff",
					"padding", "16px",
					"borderRadius", "8px",
				),
				Children: []Box{
					square("square-1", "#0CC0DF"),
					square("square-2", "#12aa9c"),
					square("square-3", "#20c997"),
				},
			},
		},
	}
}

// FindStory returns the story with the given name.
func FindStory(name string) (Story, bool) {
	for _, s := range Stories() {
		if s.Name == name {
			return s, true
		}
	}
	return Story{}, false
}

func flexChild(name, background, text string) Box {
	return Box{
		Name: name,
		Style: NewInline(
			"background", background,
			"padding", "16px",
			"color", "#fff",
			"borderRadius", "4px",
		),
		Text: text,
	}
}

func paddedChild(token, text string) Box {
	return Box{
		Name:    "padding-" + token,
		Request: style.Request{Padding: style.Token(token)},
		Style:   NewInline("background", "#f9f9f9", "border", "1px solid #ddd", "borderRadius", "4px"),
		Text:    text,
	}
}

func square(name, background string) Box {
	return Box{
		Name:    name,
		Request: style.Request{Width: style.Px(50), Height: style.Px(50)},
		Style:   NewInline("background", background, "borderRadius", "4px"),
	}
}
